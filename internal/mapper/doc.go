// Package mapper converts between the wire representations of the remote
// bookmarking services and [models.Post], and holds the small codecs shared
// by every backend: the space separated tag string, HTML entity cleanup and
// date formatting.
package mapper
