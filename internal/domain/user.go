package domain

import (
	"errors"
	"strings"
)

// ErrEmptyUsername is returned when a user has no username.
var ErrEmptyUsername = errors.New("username cannot be empty")

// User is an author of articles and comments, identified by username.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// NewCommenter builds the user record created on demand the first time an
// unknown username posts a comment. The display name defaults to the
// username and no avatar is set.
func NewCommenter(username string) (*User, error) {
	u := &User{
		Username: strings.TrimSpace(username),
	}
	u.Name = u.Username
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks that the user can be stored.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	return nil
}
