package store

// PostsTable names a posts table and its full-text index.
type PostsTable struct {
	Name string
	FTS  string
	// Syntax is set by the repository from its connection.
	Syntax FTSSyntax
}

var (
	// PinboardPostsTable backs the Pinboard and local-only modes.
	PinboardPostsTable = PostsTable{Name: "posts", FTS: "posts_fts"}
	// LinkdingPostsTable backs the Linkding mode.
	LinkdingPostsTable = PostsTable{Name: "linkding_bookmarks", FTS: "linkding_bookmarks_fts"}
)
