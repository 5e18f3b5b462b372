package models

import "time"

// SavedPost represents a post bookmarked by a user.
type SavedPost struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
