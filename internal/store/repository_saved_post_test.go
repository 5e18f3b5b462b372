package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/jackc/pgerrcode"
)

func newTestSavedPostRepo(t *testing.T) (*savedPostRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &savedPostRepository{DB: db, logger: logger.Nop()}, mock
}

func TestSavePost(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"success", nil, nil},
		{"missing post", pgError(pgerrcode.ForeignKeyViolation), ErrPostNotFound},
		{"malformed post id", pgError(pgerrcode.InvalidTextRepresentation), ErrInvalidIdentifier},
		{"driver error", errors.New("boom"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSavedPostRepo(t)

			exp := mock.ExpectExec("INSERT INTO saved_posts").WithArgs("u-1", "p-1")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.SavePost(context.Background(), models.SavedPost{UserID: "u-1", PostID: "p-1"})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			expectAllMet(t, mock)
		})
	}
}

func TestListSavedPosts_Success(t *testing.T) {
	repo, mock := newTestSavedPostRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM saved_posts").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow("p-1").AddRow("p-2"))
	mock.ExpectQuery(`SELECT post_id, title, content, image_url, user_id, created_at, updated_at FROM posts WHERE post_id IN \(\$1,\$2\) ORDER BY created_at DESC`).
		WithArgs("p-1", "p-2").
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("p-2", "t2", "c2", "https://img", "u-9", now, now).
			AddRow("p-1", "t1", "c1", nil, "u-8", now, now))
	mock.ExpectCommit()

	posts, err := repo.ListSavedPosts(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ImageURL == nil || *posts[0].ImageURL != "https://img" {
		t.Errorf("expected image url on first post, got %v", posts[0].ImageURL)
	}
	expectAllMet(t, mock)
}

func TestListSavedPosts_NoneSaved(t *testing.T) {
	repo, mock := newTestSavedPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM saved_posts").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))
	mock.ExpectCommit()

	posts, err := repo.ListSavedPosts(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", posts)
	}
	expectAllMet(t, mock)
}

func TestListSavedPosts_RollsBackOnError(t *testing.T) {
	repo, mock := newTestSavedPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM saved_posts").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.ListSavedPosts(context.Background(), "u-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	expectAllMet(t, mock)
}

func TestListSavedPosts_MalformedUserID(t *testing.T) {
	repo, mock := newTestSavedPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT post_id FROM saved_posts").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))
	mock.ExpectRollback()

	_, err := repo.ListSavedPosts(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}
