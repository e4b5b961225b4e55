// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxFilterTags is the number of tags that take part in a post filter.
// Tags past this limit are ignored.
const MaxFilterTags = 3

// SortType selects one of the fixed post orders.
type SortType int

const (
	// SortNewestFirst orders by time, newest first.
	SortNewestFirst SortType = iota
	// SortOldestFirst orders by time, oldest first.
	SortOldestFirst
	// SortTitleAsc orders by title A to Z.
	SortTitleAsc
	// SortTitleDesc orders by title Z to A.
	SortTitleDesc
)

// PostVisibility selects which posts are returned based on their shared flag.
type PostVisibility int

const (
	// VisibilityNone ignores the shared flag.
	VisibilityNone PostVisibility = iota
	// VisibilityPublic keeps only shared posts.
	VisibilityPublic
	// VisibilityPrivate keeps only private posts.
	VisibilityPrivate
)

// SearchParameters is the free-text term plus the active tag filters.
type SearchParameters struct {
	Term string
	Tags []Tag
}

// PostFilter is the predicate shared by the count and list queries of the
// local store.
type PostFilter struct {
	Term          string
	Tags          []Tag
	UntaggedOnly  bool
	Visibility    PostVisibility
	ReadLaterOnly bool
}

// PostsQuery describes one page request against a posts service.
type PostsQuery struct {
	SortType      SortType
	SearchTerm    string
	Tags          []Tag
	UntaggedOnly  bool
	Visibility    PostVisibility
	ReadLaterOnly bool
	// CountLimit bounds the total count. Zero or negative means unbounded.
	CountLimit int
	// PageLimit is the page size.
	PageLimit int
	// PageOffset is the number of posts to skip.
	PageOffset int
	// ForceRefresh refreshes from the remote even when the local cache
	// looks current.
	ForceRefresh bool
}

// Filter returns the local-store predicate described by q.
func (q PostsQuery) Filter() PostFilter {
	return PostFilter{
		Term:          q.SearchTerm,
		Tags:          q.Tags,
		UntaggedOnly:  q.UntaggedOnly,
		Visibility:    q.Visibility,
		ReadLaterOnly: q.ReadLaterOnly,
	}
}

// CountBound is the limit handed to the local count, -1 when unbounded.
func (q PostsQuery) CountBound() int {
	if q.CountLimit <= 0 {
		return -1
	}
	return q.CountLimit
}

// PostListResult is one page of posts plus metadata about the whole result.
type PostListResult struct {
	Posts      []Post
	TotalCount int
	// UpToDate is false while a remote refresh is still expected.
	UpToDate bool
	// CanPaginate is true when the page came back full.
	CanPaginate bool
}

// PostListUpdate is one element of the GetAllPosts stream. Exactly one of
// Result or Err is meaningful.
type PostListUpdate struct {
	Result PostListResult
	Err    error
}
