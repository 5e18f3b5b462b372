package models

// SignupInput is the payload of POST /user/signup.
type SignupInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     *string `json:"name" validate:"omitempty"`
}

// SigninInput is the payload of POST /user/signin.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserInput is the payload of PUT /user/.
// Every field is optional; absent fields are left untouched.
type UpdateUserInput struct {
	Name           *string `json:"name" validate:"omitempty"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	Username       *string `json:"username" validate:"omitempty,min=6"`
	Bio            *string `json:"bio" validate:"omitempty"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty"`
}

// ToUserUpdate converts the payload into a store-level partial update
// for the given user.
func (in UpdateUserInput) ToUserUpdate(userID string) UserUpdate {
	return UserUpdate{
		UserID:         userID,
		Name:           in.Name,
		Email:          in.Email,
		Password:       in.Password,
		Username:       in.Username,
		Bio:            in.Bio,
		ProfilePicture: in.ProfilePicture,
	}
}

// FollowInput is the payload of POST /user/follow and POST /user/unfollow.
type FollowInput struct {
	Username string `json:"username" validate:"required"`
}

// SavePostInput is the payload of POST /user/savedPosts.
type SavePostInput struct {
	PostID string `json:"post_id" validate:"required,uuid"`
}

// CreateBlogInput is the payload of POST /blog/.
type CreateBlogInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url" validate:"omitempty"`
}

// UpdateBlogInput is the payload of PUT /blog/.
type UpdateBlogInput struct {
	ID      string `json:"id" validate:"required,uuid"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
