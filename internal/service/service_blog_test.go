package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBlogSvc(t *testing.T) (*blogService, *mock.MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)

	return NewBlogService(repo, utils.NewUUIDGenerator(), logger.Nop()).(*blogService), repo
}

const testPostID = "0190f4d2-0000-7000-8000-000000000001"

func TestBlogService_CreatePost(t *testing.T) {
	svc, repo := newTestBlogSvc(t)
	image := "https://img.example/1.png"

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.True(t, utils.IsValidUUID(p.PostID))
			assert.Equal(t, alice.UserID, p.UserID, "owner must be the caller")
			assert.Equal(t, "T", p.Title)
			assert.Equal(t, "C", p.Content)
			assert.Equal(t, &image, p.ImageURL)
			return p, nil
		},
	)

	id, err := svc.CreatePost(context.Background(), alice, models.CreateBlogInput{Title: "T", Content: "C", ImageURL: &image})
	require.NoError(t, err)
	assert.True(t, utils.IsValidUUID(id))
}

func TestBlogService_CreatePost_Error(t *testing.T) {
	svc, repo := newTestBlogSvc(t)

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrExecutingQuery)

	_, err := svc.CreatePost(context.Background(), alice, models.CreateBlogInput{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestBlogService_UpdatePost_OwnerScoped(t *testing.T) {
	svc, repo := newTestBlogSvc(t)

	repo.EXPECT().UpdatePost(gomock.Any(), models.PostUpdate{
		PostID:  testPostID,
		UserID:  alice.UserID,
		Title:   "T2",
		Content: "C2",
	}).Return(int64(1), nil)

	require.NoError(t, svc.UpdatePost(context.Background(), alice, models.UpdateBlogInput{ID: testPostID, Title: "T2", Content: "C2"}))
}

func TestBlogService_UpdatePost_NoMatchingRow_IsSilent(t *testing.T) {
	svc, repo := newTestBlogSvc(t)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	assert.NoError(t, svc.UpdatePost(context.Background(), alice, models.UpdateBlogInput{ID: testPostID, Title: "T", Content: "C"}))
}

func TestBlogService_UpdatePost_Errors(t *testing.T) {
	svc, repo := newTestBlogSvc(t)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrInvalidIdentifier)
	assert.ErrorIs(t, svc.UpdatePost(context.Background(), alice, models.UpdateBlogInput{ID: testPostID}), ErrInvalidPostID)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingStatement)
	assert.ErrorIs(t, svc.UpdatePost(context.Background(), alice, models.UpdateBlogInput{ID: testPostID}), store.ErrExecutingStatement)
}

func TestBlogService_GetPost(t *testing.T) {
	svc, repo := newTestBlogSvc(t)
	ctx := context.Background()

	want := models.PostDetails{
		PostID:    testPostID,
		Title:     "T",
		Content:   "C",
		User:      models.PostAuthorUsername{Username: "alice"},
		CreatedAt: time.Now(),
	}
	repo.EXPECT().GetPostByID(ctx, testPostID).Return(want, nil)

	got, err := svc.GetPost(ctx, testPostID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBlogService_GetPost_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"not found", store.ErrPostNotFound, ErrPostNotFound},
		{"invalid id", store.ErrInvalidIdentifier, ErrInvalidPostID},
		{"fault", store.ErrExecutingQuery, store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestBlogSvc(t)
			repo.EXPECT().GetPostByID(gomock.Any(), testPostID).Return(models.PostDetails{}, tt.repoErr)

			_, err := svc.GetPost(context.Background(), testPostID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlogService_GetPost_MalformedID_SkipsStore(t *testing.T) {
	svc, repo := newTestBlogSvc(t)
	repo.EXPECT().GetPostByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.GetPost(context.Background(), "12")
	assert.ErrorIs(t, err, ErrInvalidPostID)
}

func TestBlogService_ListPosts(t *testing.T) {
	svc, repo := newTestBlogSvc(t)

	summaries := []models.PostSummary{{PostID: "p-2"}, {PostID: "p-1"}}
	repo.EXPECT().ListPosts(gomock.Any()).Return(summaries, nil)

	got, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}
