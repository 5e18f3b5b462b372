package models

import "time"

// User represents an account of the blogging platform.
// It is created at signup, mutated by profile update and never deleted.
type User struct {
	// UserID is the unique identifier of the user (UUID).
	UserID string `json:"user_id"`

	// Email is the unique e-mail address used to sign in.
	Email string `json:"email"`

	// Username is the unique public handle of the user.
	// Other users reference it when following/unfollowing.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the user's password.
	// The plaintext value only lives in request models and is never stored.
	Password string `json:"-"`

	// Name is the optional display name shown next to the user's posts.
	Name *string `json:"name"`

	// Bio is an optional free-form profile description.
	Bio *string `json:"bio"`

	// ProfilePicture is an optional URL of the avatar image.
	ProfilePicture *string `json:"profile_picture"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields are written; the rest stay untouched.
type UserUpdate struct {
	UserID string

	Name           *string
	Email          *string
	Password       *string
	Username       *string
	Bio            *string
	ProfilePicture *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Email == nil &&
		u.Password == nil &&
		u.Username == nil &&
		u.Bio == nil &&
		u.ProfilePicture == nil
}
