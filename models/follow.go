package models

// Follow is a directed edge from a follower to a followed user.
// A user can never follow itself; the pair is unique.
type Follow struct {
	FollowerUserID  string `json:"follower_user_id"`
	FollowingUserID string `json:"following_user_id"`
}

// Follower is one element of the followers listing.
type Follower struct {
	FollowerUserID string `json:"follower_user_id"`
}

// Following is one element of the following listing.
type Following struct {
	FollowingUserID string `json:"following_user_id"`
}
