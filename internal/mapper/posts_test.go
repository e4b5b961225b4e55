package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

func fixedDates() *DateFormatter {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	return NewDateFormatter("02/01/06, 15:04").WithClock(func() time.Time { return now }, time.UTC)
}

// ── DecodeHref ────────────────────────────────────────────────────────────────

func TestDecodeHref(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://go.dev/doc", "https://go.dev/doc"},
		{"escaped space", "https://example.com/a%20b", "https://example.com/a b"},
		{"literal plus", "https://example.com/?q=a+b", "https://example.com/?q=a+b"},
		{"stray percent", "https://example.com/100%", "https://example.com/100%"},
		{"percent before non-hex", "https://example.com/%zz", "https://example.com/%zz"},
		{"double percent", "https://example.com/%%41", "https://example.com/%A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeHref(tt.in))
		})
	}
}

// ── Pinboard ──────────────────────────────────────────────────────────────────

func TestPinboardToPost(t *testing.T) {
	m := NewPostMapper(fixedDates())

	post := m.PinboardToPost(models.PinboardPost{
		Href:        "https://example.com/a%20b",
		Description: "Title",
		Extended:    "Extended",
		Hash:        "abc123",
		Time:        "2026-01-02T10:20:30Z",
		Shared:      "no",
		ToRead:      "yes",
		Tags:        "go b&amp;w go  alpha",
	})

	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "https://example.com/a b", post.URL)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, "Extended", post.Description)
	assert.Equal(t, "02/01/26, 10:20", post.DisplayDateTime)
	assert.True(t, post.Private)
	assert.True(t, post.ReadLater)
	assert.Equal(t, []string{"alpha", "b&w", "go"}, post.TagNames())
	assert.Equal(t, models.PendingSyncNone, post.PendingSync)
}

func TestPostToPinboard(t *testing.T) {
	p := PostToPinboard(models.Post{
		ID:    "h",
		URL:   "https://example.com",
		Title: "T",
		Tags:  models.NewTags("b", "a"),
	})

	assert.Equal(t, "yes", p.Shared)
	assert.Equal(t, "no", p.ToRead)
	assert.Equal(t, "a b", p.Tags)
	assert.Equal(t, "T", p.Description)
	assert.Equal(t, "h", p.Hash)
}

// ── Linkding ──────────────────────────────────────────────────────────────────

func TestLinkdingToPost(t *testing.T) {
	m := NewPostMapper(fixedDates())
	id := 42

	t.Run("modified date wins", func(t *testing.T) {
		post := m.LinkdingToPost(models.LinkdingBookmark{
			ID:           &id,
			URL:          "https://ld.example",
			Shared:       false,
			Unread:       true,
			IsArchived:   true,
			TagNames:     []string{"z", "a", "z"},
			DateAdded:    "2025-01-01T00:00:00.123456Z",
			DateModified: "2025-02-03T04:05:06.789+02:00",
		})

		assert.Equal(t, "42", post.ID)
		assert.Equal(t, "2025-02-03T02:05:06Z", post.Time)
		assert.True(t, post.Private)
		assert.True(t, post.ReadLater)
		assert.True(t, post.IsArchived)
		assert.Equal(t, []string{"a", "z"}, post.TagNames())
	})

	t.Run("added date fallback", func(t *testing.T) {
		post := m.LinkdingToPost(models.LinkdingBookmark{ID: &id, DateAdded: "2025-01-01T00:00:00.5Z"})
		assert.Equal(t, "2025-01-01T00:00:00Z", post.Time)
	})

	t.Run("no dates uses now", func(t *testing.T) {
		post := m.LinkdingToPost(models.LinkdingBookmark{ID: &id})
		assert.Equal(t, "2026-03-04T05:06:07Z", post.Time)
	})
}

func TestPostToLinkding(t *testing.T) {
	b := PostToLinkding(models.Post{ID: "7", URL: "u", Private: true, ReadLater: true})
	require.NotNil(t, b.ID)
	assert.Equal(t, 7, *b.ID)
	assert.False(t, b.Shared)
	assert.True(t, b.Unread)
	assert.Equal(t, []string{}, b.TagNames)

	b = PostToLinkding(models.Post{ID: "0190a3c2-uuid", URL: "u"})
	assert.Nil(t, b.ID)
	assert.True(t, b.Shared)
}
