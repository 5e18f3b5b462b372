package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiPrefix             = "/api/v1"
	defaultRequestTimeout = 15 * time.Second
)

// Config holds the settings of the HTTP client.
type Config struct {
	// BaseURL is the server address, with or without scheme
	// (e.g. "localhost:8080" or "https://blog.example").
	BaseURL string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpBlogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs the resty implementation of [BlogAPI].
// It fails when cfg.BaseURL is empty or not a valid URL.
func NewHTTPBlogAdapter(cfg Config, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewAPIClient(baseURL + apiPrefix)
	client.SetTimeout(timeout)

	return &httpBlogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpBlogAdapter) authRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).SetAuthToken(h.Token())
}

// do checks the transport error and the status of resp.
func (h *httpBlogAdapter) do(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("api call rejected")
		return err
	}
	return nil
}

func (h *httpBlogAdapter) Signup(ctx context.Context, input models.SignupInput) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).SetBody(input).SetResult(&out).Post("/user/signup")
	if err = h.do("signup", resp, err); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.JWT)
	return out, nil
}

func (h *httpBlogAdapter) Signin(ctx context.Context, input models.SigninInput) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).SetBody(input).SetResult(&out).Post("/user/signin")
	if err = h.do("signin", resp, err); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.JWT)
	return out, nil
}

func (h *httpBlogAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := h.authRequest(ctx).SetResult(&user).Get("/user/")
	if err = h.do("get profile", resp, err); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpBlogAdapter) UpdateProfile(ctx context.Context, input models.UpdateUserInput) error {
	resp, err := h.authRequest(ctx).SetBody(input).Put("/user/")
	return h.do("update profile", resp, err)
}

func (h *httpBlogAdapter) Follow(ctx context.Context, username string) error {
	resp, err := h.authRequest(ctx).SetBody(models.FollowInput{Username: username}).Post("/user/follow")
	return h.do("follow", resp, err)
}

func (h *httpBlogAdapter) Unfollow(ctx context.Context, username string) error {
	resp, err := h.authRequest(ctx).SetBody(models.FollowInput{Username: username}).Post("/user/unfollow")
	return h.do("unfollow", resp, err)
}

func (h *httpBlogAdapter) ListFollowers(ctx context.Context) ([]models.Follower, error) {
	var followers []models.Follower
	resp, err := h.authRequest(ctx).SetResult(&followers).Get("/user/followers")
	if err = h.do("list followers", resp, err); err != nil {
		return nil, err
	}
	return followers, nil
}

func (h *httpBlogAdapter) ListFollowing(ctx context.Context) ([]models.Following, error) {
	var following []models.Following
	resp, err := h.authRequest(ctx).SetResult(&following).Get("/user/following")
	if err = h.do("list following", resp, err); err != nil {
		return nil, err
	}
	return following, nil
}

func (h *httpBlogAdapter) SavePost(ctx context.Context, postID string) error {
	resp, err := h.authRequest(ctx).SetBody(models.SavePostInput{PostID: postID}).Post("/user/savedPosts")
	return h.do("save post", resp, err)
}

func (h *httpBlogAdapter) ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	req := h.request(ctx)
	if userID != "" {
		req.SetQueryParam("user_id", userID)
	} else if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}

	var posts []models.Post
	resp, err := req.SetResult(&posts).Get("/user/savedPosts")
	if err = h.do("list saved posts", resp, err); err != nil {
		return nil, err
	}
	return posts, nil
}

func (h *httpBlogAdapter) CreatePost(ctx context.Context, input models.CreateBlogInput) (string, error) {
	var created models.CreatedResponse
	resp, err := h.authRequest(ctx).SetBody(input).SetResult(&created).Post("/blog/")
	if err = h.do("create post", resp, err); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (h *httpBlogAdapter) UpdatePost(ctx context.Context, input models.UpdateBlogInput) error {
	resp, err := h.authRequest(ctx).SetBody(input).Put("/blog/")
	return h.do("update post", resp, err)
}

func (h *httpBlogAdapter) GetPost(ctx context.Context, postID string) (models.PostDetails, error) {
	var post models.PostDetails
	resp, err := h.request(ctx).
		SetPathParam("id", postID).
		SetResult(&post).
		Get("/blog/{id}")
	if err = h.do("get post", resp, err); err != nil {
		return models.PostDetails{}, err
	}
	return post, nil
}

func (h *httpBlogAdapter) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	var posts []models.PostSummary
	resp, err := h.request(ctx).SetResult(&posts).Get("/blog/bulk")
	if err = h.do("list posts", resp, err); err != nil {
		return nil, err
	}
	return posts, nil
}

// Version and Health live outside the API prefix.

func (h *httpBlogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.rootURL() + "/version")
	if err = h.do("version", resp, err); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (h *httpBlogAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(h.rootURL() + "/health")
	return h.do("health", resp, err)
}

func (h *httpBlogAdapter) rootURL() string {
	return strings.TrimSuffix(h.client.BaseURL, apiPrefix)
}
