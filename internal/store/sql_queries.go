package store

const (
	createUser = `INSERT INTO users (user_id, email, username, password, name)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, username, password, name, bio, profile_picture, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password, name, bio, profile_picture, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, username, password, name, bio, profile_picture, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByUsername = `SELECT user_id, email, username, password, name, bio, profile_picture, created_at
    FROM users
    WHERE username = $1;`

	createPost = `INSERT INTO posts (post_id, title, content, image_url, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING post_id, title, content, image_url, user_id, created_at, updated_at;`

	updatePost = `UPDATE posts
    SET title = $1, content = $2, updated_at = NOW()
    WHERE post_id = $3 AND user_id = $4;`

	getPostByID = `SELECT p.post_id, p.title, p.content, u.username, p.created_at
    FROM posts p
    JOIN users u ON u.user_id = p.user_id
    WHERE p.post_id = $1;`

	listPosts = `SELECT p.content, p.title, p.post_id, u.name, p.created_at, p.updated_at
    FROM posts p
    JOIN users u ON u.user_id = p.user_id
    ORDER BY p.created_at DESC, p.post_id DESC;`

	createFollow = `INSERT INTO follows (follower_user_id, following_user_id)
    VALUES ($1, $2)
    ON CONFLICT (follower_user_id, following_user_id) DO NOTHING;`

	deleteFollow = `DELETE FROM follows
    WHERE follower_user_id = $1 AND following_user_id = $2;`

	listFollowers = `SELECT follower_user_id
    FROM follows
    WHERE following_user_id = $1
    ORDER BY created_at;`

	listFollowing = `SELECT following_user_id
    FROM follows
    WHERE follower_user_id = $1
    ORDER BY created_at;`

	savePost = `INSERT INTO saved_posts (user_id, post_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, post_id) DO NOTHING;`

	listSavedPostIDs = `SELECT post_id
    FROM saved_posts
    WHERE user_id = $1
    ORDER BY created_at;`
)

// postColumns is the column list scanned into models.Post.
var postColumns = []string{"post_id", "title", "content", "image_url", "user_id", "created_at", "updated_at"}
