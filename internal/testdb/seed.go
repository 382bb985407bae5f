//go:build integration

package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/newsroom-api/internal/store"
)

// Fixture sizes that tests assert against.
const (
	TopicCount             = 3
	UserCount              = 4
	ArticleCount           = 13
	CommentCount           = 18
	ArticleOneComments     = 11
	CatsArticleCount       = 1
	MitchArticleCount      = 12
	NewestArticleID        = 3
	ArticleWithoutComments = 2
)

type seedTopic struct{ slug, description string }

type seedUser struct{ username, name, avatarURL string }

type seedArticle struct {
	id      int64
	title   string
	topic   string
	author  string
	body    string
	created time.Time
	votes   int
}

type seedComment struct {
	id        int64
	articleID int64
	author    string
	body      string
	votes     int
	created   time.Time
}

func ts(unixMillis int64) time.Time {
	return time.UnixMilli(unixMillis).UTC()
}

var topics = []seedTopic{
	{"mitch", "The man, the Mitch, the legend"},
	{"cats", "Not dogs"},
	{"paper", "what books are made of"},
}

var users = []seedUser{
	{"butter_bridge", "jonny", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{"icellusedkars", "sam", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{"rogersop", "paul", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{"lurker", "do_nothing", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

var articles = []seedArticle{
	{1, "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", ts(1594329060000), 100},
	{2, "Sony Vaio; or, The Laptop", "mitch", "icellusedkars", "Call me Mitchell.", ts(1602828180000), 0},
	{3, "Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", "some gifs", ts(1604394720000), 0},
	{4, "Student SUES Mitch!", "mitch", "rogersop", "We all love Mitch and his wonderful, unique typing style.", ts(1588731240000), 0},
	{5, "UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", "Bastet walks amongst us, and the cats are taking arms!", ts(1596464040000), 0},
	{6, "A", "mitch", "icellusedkars", "Delicious tin of cat food", ts(1602986400000), 0},
	{7, "Z", "mitch", "icellusedkars", "I was hungry.", ts(1578406080000), 0},
	{8, "Does Mitch predate civilisation?", "mitch", "icellusedkars", "Archaeologists have uncovered a gigantic statue.", ts(1587089280000), 0},
	{9, "They're not exactly dogs, are they?", "mitch", "butter_bridge", "Well? Think about it.", ts(1591438200000), 0},
	{10, "Seven inspirational thought leaders from Manchester UK", "mitch", "rogersop", "Who are we kidding, there is only one, and it's Mitch!", ts(1589433300000), 0},
	{11, "Am I a cat?", "mitch", "icellusedkars", "Having run out of ideas for articles, I am staring at the wall.", ts(1579126860000), 0},
	{12, "Moustache", "mitch", "butter_bridge", "Have you seen the size of that thing?", ts(1602419040000), 100},
	{13, "Another article about Mitch", "mitch", "butter_bridge", "There will never be enough articles about Mitch!", ts(1602419040000), 0},
}

var comments = []seedComment{
	{1, 9, "butter_bridge", "Oh, I've got compassion running out of my nose, pal!", 16, ts(1586179020000)},
	{2, 1, "butter_bridge", "The beautiful thing about treasure is that it exists.", 14, ts(1604113380000)},
	{3, 1, "icellusedkars", "Replacing the quiet elegance of the dark suit and tie.", 100, ts(1583025180000)},
	{4, 1, "icellusedkars", " I carry a log - yes. Is it funny to you? It is not to me.", -100, ts(1582459260000)},
	{5, 1, "icellusedkars", "I hate streaming noses", 0, ts(1604437200000)},
	{6, 1, "icellusedkars", "I hate streaming eyes even more", 0, ts(1586642520000)},
	{7, 1, "icellusedkars", "Lobster pot", 0, ts(1589577540000)},
	{8, 1, "icellusedkars", "Delicious crackerbreads", 0, ts(1586899140000)},
	{9, 1, "icellusedkars", "Superficially charming", 0, ts(1577848080000)},
	{10, 3, "icellusedkars", "git push origin master", 0, ts(1592641440000)},
	{11, 3, "icellusedkars", "Ambidextrous marsupial", 0, ts(1600560600000)},
	{12, 1, "icellusedkars", "Massive intercranial brain haemorrhage", 0, ts(1583133000000)},
	{13, 1, "icellusedkars", "Fruit pastilles", 0, ts(1592220300000)},
	{14, 5, "icellusedkars", "What do you see? I have no idea where this will lead us.", 16, ts(1591682400000)},
	{15, 5, "butter_bridge", "I am 100% sure that we're not completely sure.", 1, ts(1606176480000)},
	{16, 6, "butter_bridge", "This is a bad article name", 1, ts(1602433380000)},
	{17, 9, "icellusedkars", "The owls are not what they seem.", 20, ts(1584205320000)},
	{18, 1, "butter_bridge", "This morning, I showered for nine minutes.", 16, ts(1595294400000)},
}

// Seed empties every table and inserts the fixtures with fixed ids, then
// moves the id sequences past them.
func Seed(ctx context.Context, db store.DBTX) error {
	if _, err := db.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for _, tp := range topics {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			tp.slug, tp.description); err != nil {
			return fmt.Errorf("insert topic %s: %w", tp.slug, err)
		}
	}

	for _, u := range users {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.username, u.name, u.avatarURL); err != nil {
			return fmt.Errorf("insert user %s: %w", u.username, err)
		}
	}

	for _, a := range articles {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO articles (article_id, title, topic, author, body, created_at, votes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			a.id, a.title, a.topic, a.author, a.body, a.created, a.votes); err != nil {
			return fmt.Errorf("insert article %d: %w", a.id, err)
		}
	}

	for _, c := range comments {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO comments (comment_id, article_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.id, c.articleID, c.author, c.body, c.votes, c.created); err != nil {
			return fmt.Errorf("insert comment %d: %w", c.id, err)
		}
	}

	for _, stmt := range []string{
		`SELECT setval(pg_get_serial_sequence('articles', 'article_id'), (SELECT MAX(article_id) FROM articles))`,
		`SELECT setval(pg_get_serial_sequence('comments', 'comment_id'), (SELECT MAX(comment_id) FROM comments))`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset sequence: %w", err)
		}
	}

	return nil
}
