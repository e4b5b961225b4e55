package models

// LinkdingBookmark is the bookmark resource of the Linkding REST API.
type LinkdingBookmark struct {
	ID                 *int     `json:"id,omitempty"`
	URL                string   `json:"url"`
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	WebsiteTitle       string   `json:"website_title,omitempty"`
	WebsiteDescription string   `json:"website_description,omitempty"`
	IsArchived         bool     `json:"is_archived"`
	Unread             bool     `json:"unread"`
	Shared             bool     `json:"shared"`
	TagNames           []string `json:"tag_names"`
	DateAdded          string   `json:"date_added,omitempty"`
	DateModified       string   `json:"date_modified,omitempty"`
}

// LinkdingBookmarkPage is the paginated envelope of GET api/bookmarks/.
type LinkdingBookmarkPage struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []LinkdingBookmark `json:"results"`
}

// LinkdingTag is the tag resource of the Linkding REST API.
type LinkdingTag struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DateAdded string `json:"date_added"`
}

// LinkdingTagPage is the paginated envelope of GET api/tags/.
type LinkdingTagPage struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []LinkdingTag `json:"results"`
}
