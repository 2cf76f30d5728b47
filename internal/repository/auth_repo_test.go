// auth_repo_test.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"poke_explorer/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		user           models.User
		mockExpect     func(sqlmock.Sqlmock)
		wantErr        bool
		wantDuplicate  bool
		errContainsStr string
	}{
		{
			name: "success",
			user: models.User{ID: "u-1", Username: "alice", PasswordHash: "h123", CreatedAt: created},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice", "h123", created.UnixNano()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "exec error",
			user: models.User{ID: "u-2", Username: "bob", PasswordHash: "h456", CreatedAt: created},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-2", "bob", "h456", created.UnixNano()).
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name: "unique violation",
			user: models.User{ID: "u-3", Username: "carol", PasswordHash: "h789", CreatedAt: created},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-3", "carol", "h789", created.UnixNano()).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))
			},
			wantErr:       true,
			wantDuplicate: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			err := repo.Create(context.Background(), tt.user)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if tt.errContainsStr != "" && !strings.Contains(err.Error(), tt.errContainsStr) {
				t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
			}
			if errors.Is(err, ErrDuplicate) != tt.wantDuplicate {
				t.Fatalf("errors.Is(err, ErrDuplicate) = %v, want %v (err=%v)", !tt.wantDuplicate, tt.wantDuplicate, err)
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		username       string
		mockExpect     func(sqlmock.Sqlmock)
		wantUser       *models.User
		wantErr        bool
		errContainsStr string
	}{
		{
			name:     "found",
			username: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
					AddRow("u-7", "alice", "h123", created.UnixNano())
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: "u-7", Username: "alice", PasswordHash: "h123", CreatedAt: created},
		},
		{
			name:     "not found (ErrNoRows)",
			username: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:     "query error",
			username: "bob",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("bob").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr:        true,
			errContainsStr: "select user",
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				if u != nil {
					t.Fatalf("expected user=nil on error, got %+v", u)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.Username != tt.wantUser.Username ||
				u.PasswordHash != tt.wantUser.PasswordHash || !u.CreatedAt.Equal(tt.wantUser.CreatedAt) {
				t.Fatalf("user mismatch: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_GetByID_NoHash(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs("u-9").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}).
			AddRow("u-9", "misty", created.UnixNano()))

	u, err := repo.GetByID(context.Background(), "u-9")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if u == nil || u.Username != "misty" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("hash must not be loaded, got %q", u.PasswordHash)
	}
}

func TestUserRepository_GetByID_Missing(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByID(context.Background(), "gone")
	if err != nil || u != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", u, err)
	}
}
