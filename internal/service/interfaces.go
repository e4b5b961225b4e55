// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the bookmark operations on top of the local
// store and the remote adapters.
//
// There is one [PostsService] per backend (Pinboard, Linkding, local only)
// and a proxy that forwards every call to the one selected by the current
// [models.AppMode]. Remote-backed services keep working offline by queueing
// changes with a pending marker that [PendingSyncService] replays later.
package service

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PostsService is the bookmark API used by the client.
type PostsService interface {
	// Update returns the remote's last change time, or now for backends
	// that do not track one.
	Update(ctx context.Context) (string, error)

	// Add creates or replaces a post. A blank id or time is filled in. When
	// the remote cannot be reached the post is stored locally with a
	// pending marker and returned without error.
	Add(ctx context.Context, post models.Post) (models.Post, error)

	// Delete removes the post with the given id or URL.
	Delete(ctx context.Context, id, url string) error

	// GetAllPosts streams the local page for q, then refreshes from the
	// remote when needed and streams the page again. The channel is closed
	// when no more updates follow or ctx ends.
	GetAllPosts(ctx context.Context, q models.PostsQuery) <-chan models.PostListUpdate

	// GetQueryResultSize counts the posts matching term and tags, ignoring
	// every other filter. It returns 0 on failure.
	GetQueryResultSize(ctx context.Context, term string, tags []models.Tag) int

	// GetPost looks the post up locally, then remotely.
	GetPost(ctx context.Context, id, url string) (models.Post, error)

	// SearchExistingPostTag suggests tags for tag, leaving out currentTags.
	SearchExistingPostTag(ctx context.Context, tag string, currentTags []models.Tag) ([]string, error)

	// GetPendingSyncPosts returns the posts waiting to be sent to the remote.
	GetPendingSyncPosts(ctx context.Context) ([]models.Post, error)

	// ClearCache drops every locally stored post of this backend.
	ClearCache(ctx context.Context) error

	// GetAllTags returns every tag with its usage count, sorted by name.
	GetAllTags(ctx context.Context) ([]models.Tag, error)

	// RenameTag renames a tag everywhere and returns the new tag list.
	RenameTag(ctx context.Context, oldName, newName string) ([]models.Tag, error)
}

// AppModeSource reports the backend selected for the account.
type AppModeSource interface {
	// Current returns the mode without waiting.
	Current() models.AppMode
	// AwaitMode blocks until the mode is known or ctx ends.
	AwaitMode(ctx context.Context) (models.AppMode, error)
}

// UnauthorizedNotifier is told about every remote call rejected as
// unauthorized.
type UnauthorizedNotifier interface {
	NotifyUnauthorized()
}

// IDGenerator produces ids for posts created locally.
type IDGenerator interface {
	Generate() string
}

// PendingSyncService replays the offline mutation queue.
type PendingSyncService interface {
	// SyncPending sends every pending post to the remote, one at a time,
	// and returns the joined failures.
	SyncPending(ctx context.Context) error
}

// CacheRefresher reconciles the local cache with the remote.
type CacheRefresher interface {
	Refresh(ctx context.Context) error
}
