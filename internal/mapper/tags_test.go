package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

func TestTagsFromString(t *testing.T) {
	assert.Nil(t, TagsFromString(""))
	assert.Nil(t, TagsFromString("   "))
	assert.Equal(t, models.NewTags("a", "b", "c"), TagsFromString(" c a  b a "))
}

func TestTagsToString(t *testing.T) {
	assert.Equal(t, "", TagsToString(nil))
	assert.Equal(t, "a b", TagsToString(models.NewTags("b", "a", "b")))
	assert.Equal(t, "x y z", TagNamesToString([]string{"z", "x y"}))
}

func TestReplaceHTMLChars(t *testing.T) {
	assert.Equal(t, `a&b<c>"d'e`, ReplaceHTMLChars("a&amp;b&lt;c&gt;&quot;d&#39;e"))
}
