// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// PostMapper converts remote DTOs into posts. It holds the date formatter
// used to fill [models.Post.DisplayDateTime].
type PostMapper struct {
	dates *DateFormatter
}

// NewPostMapper returns a mapper that renders display times with dates.
func NewPostMapper(dates *DateFormatter) *PostMapper {
	return &PostMapper{dates: dates}
}

// Dates returns the formatter used by m.
func (m *PostMapper) Dates() *DateFormatter {
	return m.dates
}

// PinboardToPost maps a Pinboard post. The href is URL-decoded leniently:
// a '%' that does not start an escape and a literal '+' are kept as is.
func (m *PostMapper) PinboardToPost(p models.PinboardPost) models.Post {
	return models.Post{
		ID:              p.Hash,
		URL:             DecodeHref(p.Href),
		Title:           p.Description,
		Description:     p.Extended,
		Time:            p.Time,
		DisplayDateTime: m.dates.TZToDisplay(p.Time),
		Private:         p.Shared == models.PinboardLiteralNo,
		ReadLater:       p.ToRead == models.PinboardLiteralYes,
		Tags:            TagsFromString(ReplaceHTMLChars(p.Tags)),
	}
}

// PostToPinboard is the reverse of [PostMapper.PinboardToPost].
func PostToPinboard(p models.Post) models.PinboardPost {
	shared := models.PinboardLiteralYes
	if p.Private {
		shared = models.PinboardLiteralNo
	}
	toRead := models.PinboardLiteralNo
	if p.ReadLater {
		toRead = models.PinboardLiteralYes
	}

	return models.PinboardPost{
		Href:        p.URL,
		Description: p.Title,
		Extended:    p.Description,
		Hash:        p.ID,
		Time:        p.Time,
		Shared:      shared,
		ToRead:      toRead,
		Tags:        TagsToString(p.Tags),
	}
}

// LinkdingToPost maps a Linkding bookmark. The time is the modification date
// when present, else the creation date, else now.
func (m *PostMapper) LinkdingToPost(b models.LinkdingBookmark) models.Post {
	var id string
	if b.ID != nil {
		id = strconv.Itoa(*b.ID)
	}

	postTime, ok := NormalizeTZ(b.DateModified)
	if !ok {
		postTime, ok = NormalizeTZ(b.DateAdded)
	}
	if !ok {
		postTime = m.dates.NowAsTZ()
	}

	return models.Post{
		ID:                 id,
		URL:                b.URL,
		Title:              b.Title,
		Description:        b.Description,
		Notes:              b.Notes,
		WebsiteTitle:       b.WebsiteTitle,
		WebsiteDescription: b.WebsiteDescription,
		Time:               postTime,
		DisplayDateTime:    m.dates.TZToDisplay(postTime),
		Private:            !b.Shared,
		ReadLater:          b.Unread,
		IsArchived:         b.IsArchived,
		Tags:               TagsFromString(strings.Join(b.TagNames, models.PinboardTagSeparator)),
	}
}

// PostToLinkding is the reverse of [PostMapper.LinkdingToPost]. The id is
// nil unless the post id is a decimal number.
func PostToLinkding(p models.Post) models.LinkdingBookmark {
	b := models.LinkdingBookmark{
		URL:                p.URL,
		Title:              p.Title,
		Description:        p.Description,
		Notes:              p.Notes,
		WebsiteTitle:       p.WebsiteTitle,
		WebsiteDescription: p.WebsiteDescription,
		IsArchived:         p.IsArchived,
		Unread:             p.ReadLater,
		Shared:             !p.Private,
		TagNames:           p.TagNames(),
	}
	if b.TagNames == nil {
		b.TagNames = []string{}
	}

	if id, err := strconv.Atoi(p.ID); err == nil {
		b.ID = &id
	}

	return b
}

// DecodeHref URL-decodes a Pinboard href. Undecodable input is returned as
// is.
func DecodeHref(href string) string {
	var b strings.Builder
	b.Grow(len(href))
	for i := 0; i < len(href); i++ {
		switch {
		case href[i] == '%' && (i+2 >= len(href) || !isHex(href[i+1]) || !isHex(href[i+2])):
			b.WriteString("%25")
		case href[i] == '+':
			b.WriteString("%2B")
		default:
			b.WriteByte(href[i])
		}
	}

	decoded, err := url.QueryUnescape(b.String())
	if err != nil {
		return href
	}
	return decoded
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
