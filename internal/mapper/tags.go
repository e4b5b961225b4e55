package mapper

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// TagNamesFromString splits a space separated tag string, dropping empty
// tokens and duplicates. The result is sorted.
func TagNamesFromString(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}

	slices.Sort(fields)
	return slices.Compact(fields)
}

// TagsFromString is [TagNamesFromString] returning [models.Tag] values.
func TagsFromString(s string) []models.Tag {
	names := TagNamesFromString(s)
	if names == nil {
		return nil
	}
	return models.NewTags(names...)
}

// TagsToString joins the tag names with a single space after the same
// cleanup [TagsFromString] applies.
func TagsToString(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return TagNamesToString(names)
}

// TagNamesToString joins names with a single space, sorted and deduplicated.
// Names containing spaces are split.
func TagNamesToString(names []string) string {
	return strings.Join(TagNamesFromString(strings.Join(names, models.PinboardTagSeparator)), models.PinboardTagSeparator)
}
