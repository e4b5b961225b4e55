package store

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalPostsRepository is the local cache of one backend's posts.
type LocalPostsRepository interface {
	// SavePosts upserts posts by id in one transaction.
	SavePosts(ctx context.Context, posts []models.Post) error
	// CountPosts counts the posts matching filter, capped at limit (-1 means no cap).
	CountPosts(ctx context.Context, filter models.PostFilter, limit int) (int, error)
	// GetAllPosts returns one page of the posts matching filter.
	GetAllPosts(ctx context.Context, filter models.PostFilter, sort models.SortType, limit, offset int) ([]models.Post, error)
	// SearchTags suggests tag names starting with prefix, most used first.
	SearchTags(ctx context.Context, prefix string, exclude []string, limit int) ([]string, error)
	// GetAllTags returns every tag with its usage count.
	GetAllTags(ctx context.Context) ([]models.Tag, error)
	// RenameTag replaces oldName with newName on every post carrying it.
	RenameTag(ctx context.Context, oldName, newName string) error
	// GetPost returns the post with the given id or URL.
	GetPost(ctx context.Context, id, url string) (models.Post, error)
	DeleteAllPosts(ctx context.Context) error
	// DeleteAllSyncedPosts removes every row without a pending marker.
	DeleteAllSyncedPosts(ctx context.Context) error
	DeletePost(ctx context.Context, id, url string) error
	// DeletePendingSyncPost removes the pending row for url, if any.
	DeletePendingSyncPost(ctx context.Context, url string) error
	// GetPendingSyncPosts returns the rows with a pending marker in insertion order.
	GetPendingSyncPosts(ctx context.Context) ([]models.Post, error)
}

// PreferencesRepository persists small key/value settings.
type PreferencesRepository interface {
	// GetPreference returns the stored value, or "" when the key is unset.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}
