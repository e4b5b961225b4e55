// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

var errDB = errors.New("db failure")

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── SavePosts ─────────────────────────────────────────────────────────────────

func TestSavePosts_Errors(t *testing.T) {
	posts := []models.Post{{ID: "1", URL: "u"}, {ID: "2", URL: "v"}}
	upsert := regexp.QuoteMeta("INSERT INTO posts")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errDB)
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "prepare",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectPrepare(upsert).WillReturnError(errDB)
				mock.ExpectRollback()
			},
			wantErr: ErrPreparingStatement,
		},
		{
			name: "exec rolls back the batch",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				prep := mock.ExpectPrepare(upsert)
				prep.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
				prep.ExpectExec().WillReturnError(errDB)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				prep := mock.ExpectPrepare(upsert)
				prep.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
				prep.ExpectExec().WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit().WillReturnError(errDB)
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			repo := NewPostsRepository(db, PinboardPostsTable, nil, logger.Nop())
			err := repo.SavePosts(testContext(), posts)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, errDB)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSavePosts_WritesEveryColumn(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO linkding_bookmarks")).
		ExpectExec().
		WithArgs("7", "https://x", "T", "D", "N", "WT", "WD", "2026-01-01T00:00:00Z",
			false, true, true, "a b", sql.NullString{String: "ADD", Valid: true}).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewPostsRepository(db, LinkdingPostsTable, nil, logger.Nop())
	err := repo.SavePosts(testContext(), []models.Post{{
		ID:                 "7",
		URL:                "https://x",
		Title:              "T",
		Description:        "D",
		Notes:              "N",
		WebsiteTitle:       "WT",
		WebsiteDescription: "WD",
		Time:               "2026-01-01T00:00:00Z",
		Private:            true,
		ReadLater:          true,
		IsArchived:         true,
		Tags:               models.NewTags("b", "a"),
		PendingSync:        models.PendingSyncAdd,
	}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── queries ───────────────────────────────────────────────────────────────────

func TestQueries_Errors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostsRepository(db, PinboardPostsTable, nil, logger.Nop())
	ctx := testContext()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errDB)
	_, err := repo.CountPosts(ctx, models.PostFilter{}, -1)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectQuery("SELECT id").WillReturnError(errDB)
	_, err = repo.GetAllPosts(ctx, models.PostFilter{}, models.SortNewestFirst, 10, 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectQuery("SELECT id").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("1"))
	_, err = repo.GetPendingSyncPosts(ctx)
	assert.ErrorIs(t, err, ErrScanningRow)

	mock.ExpectQuery("SELECT id").WillReturnError(errDB)
	_, err = repo.GetPost(ctx, "1", "")
	assert.ErrorIs(t, err, ErrScanningRow)

	mock.ExpectQuery("SELECT tags").WillReturnError(errDB)
	_, err = repo.GetAllTags(ctx)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectExec("DELETE FROM posts").WillReturnError(errDB)
	err = repo.DeleteAllSyncedPosts(ctx)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenameTag_Errors(t *testing.T) {
	t.Run("select", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, tags").WillReturnError(errDB)
		mock.ExpectRollback()

		err := NewPostsRepository(db, PinboardPostsTable, nil, logger.Nop()).RenameTag(testContext(), "a", "b")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, tags").WillReturnRows(sqlmock.NewRows([]string{"id", "tags"}).AddRow("1", "a c"))
		mock.ExpectExec("UPDATE posts SET tags").WithArgs("b c", "1").WillReturnError(errDB)
		mock.ExpectRollback()

		err := NewPostsRepository(db, PinboardPostsTable, nil, logger.Nop()).RenameTag(testContext(), "a", "b")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── preferences ───────────────────────────────────────────────────────────────

func TestPreferences(t *testing.T) {
	repo := newSQLiteStorages(t, "").Preferences
	ctx := context.Background()

	value, err := repo.GetPreference(ctx, "pinboard_last_update")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repo.SetPreference(ctx, "pinboard_last_update", "2026-01-01T00:00:00Z"))
	require.NoError(t, repo.SetPreference(ctx, "pinboard_last_update", "2026-01-02T00:00:00Z"))

	value, err = repo.GetPreference(ctx, "pinboard_last_update")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T00:00:00Z", value)
}

func TestPreferences_Errors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferencesRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM preferences").WithArgs("k").WillReturnError(errDB)
	_, err := repo.GetPreference(testContext(), "k")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectExec("INSERT INTO preferences").WithArgs("k", "v").WillReturnError(errDB)
	err = repo.SetPreference(testContext(), "k", "v")
	assert.ErrorIs(t, err, ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── connection ────────────────────────────────────────────────────────────────

func TestNewConnectSQLite_UnknownDriver(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), configDB("x.db", "postgres"), logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
