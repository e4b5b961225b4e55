// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a single bookmark as the rest of the application sees it,
// regardless of which backend it came from.
//
// ID is the primary key of the local table: the Pinboard hash, the decimal
// Linkding id, or a UUID for posts created locally. Saving a Post with an ID
// that already exists replaces the stored row entirely.
type Post struct {
	// ID is the backend-specific unique key of the bookmark.
	ID string
	// URL is the bookmarked address.
	URL string
	// Title is the user-visible title.
	Title string
	// Description is the extended description.
	Description string
	// Notes are free-form user notes. Only Linkding supports them remotely.
	Notes string
	// WebsiteTitle is the title scraped by the remote service, if any.
	WebsiteTitle string
	// WebsiteDescription is the description scraped by the remote service.
	WebsiteDescription string
	// Time is the creation or modification time in UTC, formatted with
	// [TimeLayoutTZ].
	Time string
	// DisplayDateTime is Time rendered with the configured display layout.
	DisplayDateTime string
	// Private is true when the bookmark is not shared publicly.
	Private bool
	// ReadLater marks the bookmark as unread / to read.
	ReadLater bool
	// IsArchived marks the bookmark as archived.
	IsArchived bool
	// Tags is the deduplicated, sorted tag set.
	Tags []Tag
	// PendingSync records a local mutation not yet confirmed by the remote.
	PendingSync PendingSync
}

// TimeLayoutTZ is the layout of [Post.Time].
const TimeLayoutTZ = "2006-01-02T15:04:05Z"

// TagNames returns the names of p's tags in order.
func (p Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}

// Tag is a tag name together with the number of posts using it.
// Tags are derived from posts and never stored on their own.
type Tag struct {
	Name  string
	Posts int
}

// NewTags builds a tag slice from plain names, leaving counts at zero.
func NewTags(names ...string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, Tag{Name: n})
	}
	return tags
}
