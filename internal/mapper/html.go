package mapper

import "html"

// ReplaceHTMLChars decodes the HTML entities the Pinboard API leaves in
// tag names (&amp; &lt; &gt; &quot; &#39; and friends).
func ReplaceHTMLChars(s string) string {
	return html.UnescapeString(s)
}
