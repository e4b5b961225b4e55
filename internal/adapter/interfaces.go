// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP clients for the remote bookmarking
// services and a connectivity probe.
//
// [PinboardAdapter] speaks the GET-based Pinboard v1 API and spaces its calls
// with a [ratelimit.Runner]. [LinkdingAdapter] speaks the Linkding REST API.
// Neither retries on its own; the service layer composes retries on top.
//
// Non-2xx statuses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] regardless of backend
// (e.g. [ErrUnauthorized] for 401/403, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PinboardAdapter is the Pinboard-compatible remote.
type PinboardAdapter interface {
	// Update returns the time of the most recent change to any bookmark.
	Update(ctx context.Context) (models.PinboardUpdate, error)

	// AddPost creates or replaces a bookmark. Title and tags are trimmed to
	// the API text limit and the description is trimmed so the request URI
	// stays under the API limit. A 414 answer is retried once with a
	// stricter limit. The returned response carries the result code; a
	// non-done code is not reported as an error.
	AddPost(ctx context.Context, req models.PinboardAddRequest) (models.PinboardGenericResponse, error)

	// DeletePost deletes the bookmark with the given URL.
	DeletePost(ctx context.Context, url string) (models.PinboardGenericResponse, error)

	// GetPost returns the bookmark with the given URL, if any.
	GetPost(ctx context.Context, url string) (models.PinboardGetPostResponse, error)

	// GetAllPosts returns up to limit bookmarks starting at offset, newest first.
	GetAllPosts(ctx context.Context, offset, limit int) ([]models.PinboardPost, error)

	// GetAllTags returns every tag with its usage count.
	GetAllTags(ctx context.Context) (map[string]int, error)

	// RenameTag renames a tag on every bookmark carrying it.
	RenameTag(ctx context.Context, oldName, newName string) (models.PinboardGenericResponse, error)
}

// LinkdingAdapter is the Linkding-compatible remote.
type LinkdingAdapter interface {
	// GetBookmarks returns one page of bookmarks.
	GetBookmarks(ctx context.Context, offset, limit int) (models.LinkdingBookmarkPage, error)

	// GetBookmark returns a bookmark by its numeric id.
	GetBookmark(ctx context.Context, id string) (models.LinkdingBookmark, error)

	// CreateBookmark creates a bookmark and returns the stored copy.
	CreateBookmark(ctx context.Context, bookmark models.LinkdingBookmark) (models.LinkdingBookmark, error)

	// UpdateBookmark replaces the bookmark with the given id.
	UpdateBookmark(ctx context.Context, id string, bookmark models.LinkdingBookmark) (models.LinkdingBookmark, error)

	// DeleteBookmark deletes the bookmark with the given id.
	DeleteBookmark(ctx context.Context, id string) error

	// GetTags returns one page of tags.
	GetTags(ctx context.Context, offset, limit int) (models.LinkdingTagPage, error)
}

// ConnectivityChecker tells the services whether the remote is reachable.
type ConnectivityChecker interface {
	IsConnected(ctx context.Context) bool
}
