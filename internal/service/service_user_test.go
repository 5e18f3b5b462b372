package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userSvcMocks struct {
	users     *mock.MockUserRepository
	follows   *mock.MockFollowRepository
	savedPost *mock.MockSavedPostRepository
}

func newTestUserSvc(t *testing.T) (*userService, userSvcMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := userSvcMocks{
		users:     mock.NewMockUserRepository(ctrl),
		follows:   mock.NewMockFollowRepository(ctrl),
		savedPost: mock.NewMockSavedPostRepository(ctrl),
	}

	svc := NewUserService(m.users, m.follows, m.savedPost, utils.NewPasswordHasher(bcrypt.MinCost), logger.Nop()).(*userService)
	return svc, m
}

var alice = models.Caller{UserID: "0190f4d2-0000-7000-8000-00000000000a"}

func strPtr(s string) *string { return &s }

// ── Profile ──────────────────────────────────────────────────────────────────

func TestUserService_GetProfile_StripsPassword(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, alice.UserID).
		Return(models.User{UserID: alice.UserID, Username: "alice", Password: "$2a$hash"}, nil)

	user, err := svc.GetProfile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByID(gomock.Any(), alice.UserID).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), alice)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	svc, m := newTestUserSvc(t)

	input := models.UpdateUserInput{Bio: strPtr("hello"), Password: strPtr("newsecret")}

	m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.UserUpdate) error {
			assert.Equal(t, alice.UserID, u.UserID)
			require.NotNil(t, u.Bio)
			assert.Equal(t, "hello", *u.Bio)
			require.NotNil(t, u.Password)
			assert.NotEqual(t, "newsecret", *u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("newsecret")))
			assert.Nil(t, u.Email)
			return nil
		},
	)

	require.NoError(t, svc.UpdateProfile(context.Background(), alice, input))
	// the caller's input is not mutated
	assert.Equal(t, "newsecret", *input.Password)
}

func TestUserService_UpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"taken", store.ErrUserAlreadyExists, ErrUsernameTaken},
		{"missing", store.ErrNoUserWasFound, ErrUserNotFound},
		{"fault", store.ErrExecutingStatement, store.ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestUserSvc(t)
			m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(tt.repoErr)

			err := svc.UpdateProfile(context.Background(), alice, models.UpdateUserInput{Name: strPtr("x")})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Follow / Unfollow ────────────────────────────────────────────────────────

func TestUserService_Follow_Success(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.users.EXPECT().FindUserByUsername(ctx, "bob").Return(models.User{UserID: "bob-id"}, nil),
		m.follows.EXPECT().CreateFollow(ctx, models.Follow{FollowerUserID: alice.UserID, FollowingUserID: "bob-id"}).Return(nil),
	)

	require.NoError(t, svc.Follow(ctx, alice, models.FollowInput{Username: "bob"}))
}

func TestUserService_Follow_Self_NoEdge(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: alice.UserID}, nil)
	m.follows.EXPECT().CreateFollow(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Follow(context.Background(), alice, models.FollowInput{Username: "alice"})
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestUserService_Follow_UnknownTarget(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	m.follows.EXPECT().CreateFollow(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Follow(context.Background(), alice, models.FollowInput{Username: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Follow_StoreRejectsSelfEdge(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{UserID: "bob-id"}, nil)
	m.follows.EXPECT().CreateFollow(gomock.Any(), gomock.Any()).Return(store.ErrSelfFollow)

	err := svc.Follow(context.Background(), alice, models.FollowInput{Username: "bob"})
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestUserService_Unfollow(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "bob").Return(models.User{UserID: "bob-id"}, nil)
	m.follows.EXPECT().DeleteFollow(ctx, models.Follow{FollowerUserID: alice.UserID, FollowingUserID: "bob-id"}).Return(int64(1), nil)

	require.NoError(t, svc.Unfollow(ctx, alice, models.FollowInput{Username: "bob"}))
}

func TestUserService_Unfollow_NotFollowing_IsNotAnError(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{UserID: "bob-id"}, nil)
	m.follows.EXPECT().DeleteFollow(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	assert.NoError(t, svc.Unfollow(context.Background(), alice, models.FollowInput{Username: "bob"}))
}

func TestUserService_Unfollow_Errors(t *testing.T) {
	svc, m := newTestUserSvc(t)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.Unfollow(context.Background(), alice, models.FollowInput{Username: "ghost"}), ErrUserNotFound)

	fault := errors.New("boom")
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{UserID: "bob-id"}, nil)
	m.follows.EXPECT().DeleteFollow(gomock.Any(), gomock.Any()).Return(int64(0), fault)
	assert.ErrorIs(t, svc.Unfollow(context.Background(), alice, models.FollowInput{Username: "bob"}), fault)
}

func TestUserService_FollowLists(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	m.follows.EXPECT().ListFollowers(ctx, alice.UserID).Return([]models.Follower{{FollowerUserID: "bob-id"}}, nil)
	m.follows.EXPECT().ListFollowing(ctx, alice.UserID).Return([]models.Following{}, nil)

	followers, err := svc.ListFollowers(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []models.Follower{{FollowerUserID: "bob-id"}}, followers)

	following, err := svc.ListFollowing(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, following)
}

// ── Saved posts ──────────────────────────────────────────────────────────────

func TestUserService_SavePost(t *testing.T) {
	postID := "0190f4d2-0000-7000-8000-0000000000ff"

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"saved", nil, nil},
		{"missing post", store.ErrPostNotFound, ErrPostNotFound},
		{"bad id", store.ErrInvalidIdentifier, ErrInvalidPostID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestUserSvc(t)
			m.savedPost.EXPECT().
				SavePost(gomock.Any(), models.SavedPost{UserID: alice.UserID, PostID: postID}).
				Return(tt.repoErr)

			err := svc.SavePost(context.Background(), alice, models.SavePostInput{PostID: postID})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUserService_ListSavedPosts(t *testing.T) {
	svc, m := newTestUserSvc(t)
	ctx := context.Background()

	posts := []models.Post{{PostID: "p-1", Title: "T"}}
	m.savedPost.EXPECT().ListSavedPosts(ctx, alice.UserID).Return(posts, nil)

	got, err := svc.ListSavedPosts(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestUserService_ListSavedPosts_InvalidUserID(t *testing.T) {
	svc, m := newTestUserSvc(t)
	m.savedPost.EXPECT().ListSavedPosts(gomock.Any(), gomock.Any()).Times(0)

	for _, id := range []string{"", "42", "not-a-uuid"} {
		_, err := svc.ListSavedPosts(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidUserID, "id %q", id)
	}
}
