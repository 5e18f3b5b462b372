package models

import "time"

// Post is a blog post owned by exactly one user.
// The owner is set at creation and never changes.
type Post struct {
	PostID    string    `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate carries the fields of an owner-scoped post update.
// The row is matched by both PostID and UserID.
type PostUpdate struct {
	PostID  string
	UserID  string
	Title   string
	Content string
}

// PostAuthorName is the author projection used by the bulk listing.
type PostAuthorName struct {
	Name *string `json:"name"`
}

// PostAuthorUsername is the author projection used by the single post view.
type PostAuthorUsername struct {
	Username string `json:"username"`
}

// PostSummary is one element of the bulk post listing.
type PostSummary struct {
	Content   string         `json:"content"`
	Title     string         `json:"title"`
	PostID    string         `json:"post_id"`
	User      PostAuthorName `json:"User"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PostDetails is the single post view returned by id.
type PostDetails struct {
	PostID    string             `json:"post_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	User      PostAuthorUsername `json:"User"`
	CreatedAt time.Time          `json:"createdAt"`
}
