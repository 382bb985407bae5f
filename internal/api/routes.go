package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the API's routes on r, which is expected to be the
// /api subrouter.
func RegisterRoutes(r chi.Router, listing *ListingHandler, articles *ArticleHandler) {
	r.Get("/", listing.GetEndpoints)
	r.Get("/topics", listing.ListTopics)
	r.Get("/users", listing.ListUsers)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", articles.ListArticles)
		r.Get("/topic/{topic}", articles.ListArticlesByTopic)
		r.Get("/{article_id}", articles.GetArticle)
		r.Patch("/{article_id}", articles.UpdateVotes)
		r.Get("/{article_id}/comments", articles.ListComments)
		r.Post("/{article_id}/comments", articles.CreateComment)
	})

	r.Delete("/comments/{comment_id}", articles.DeleteComment)
}
