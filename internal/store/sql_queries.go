// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"regexp"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-keeper/models"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// postColumns is the column order used by every insert and select.
var postColumns = []string{
	"id",
	"url",
	"title",
	"description",
	"notes",
	"website_title",
	"website_description",
	"time",
	"shared",
	"read_later",
	"archived",
	"tags",
	"pending_sync",
}

// termDisallowed matches every character dropped from a search term.
var termDisallowed = regexp.MustCompile(`[^A-Za-z0-9 ._\-=#@&]`)

// hasWordChar reports whether a token survives FTS tokenization.
var hasWordChar = regexp.MustCompile(`[A-Za-z0-9]`)

// plainTag matches tag names both FTS tokenizers index as one token.
var plainTag = regexp.MustCompile(`^[A-Za-z0-9]+$`)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// formatSearchTerm turns free text into an FTS query: each token becomes a
// quoted prefix phrase and the phrases are ANDed. Quoting keeps hyphens and
// dots inside a token adjacent instead of being parsed as operators.
func formatSearchTerm(term string, syntax FTSSyntax) string {
	clean := strings.TrimSpace(termDisallowed.ReplaceAllString(term, ""))

	tokens := make([]string, 0, 4)
	for _, tok := range strings.Fields(clean) {
		if !hasWordChar.MatchString(tok) {
			continue
		}
		tokens = append(tokens, syntax.prefixPhrase(tok))
	}

	return strings.Join(tokens, " ")
}

func ftsMatch(table PostsTable, column, match string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("rowid IN (SELECT rowid FROM %s WHERE %s MATCH ?)", table.FTS, column), match)
}

// tagMatch selects rows carrying tag, or a tag starting with it when prefix
// is set. Names the tokenizers would split or drop are matched against the
// space separated tags column instead of the index.
func tagMatch(table PostsTable, tag string, prefix bool) sq.Sqlizer {
	if name := strings.ReplaceAll(tag, `"`, ""); plainTag.MatchString(name) {
		if prefix {
			return ftsMatch(table, "tags", table.Syntax.prefixPhrase(name))
		}
		return ftsMatch(table, "tags", `"`+name+`"`)
	}

	pattern := "% " + likeEscaper.Replace(tag)
	if prefix {
		pattern += "%"
	} else {
		pattern += " %"
	}
	return sq.Expr(`(' ' || tags || ' ') LIKE ? ESCAPE '\'`, pattern)
}

// buildPostFilter returns the predicate shared by the count and list queries.
func buildPostFilter(table PostsTable, filter models.PostFilter) sq.And {
	where := sq.And{}

	if term := formatSearchTerm(filter.Term, table.Syntax); term != "" {
		where = append(where, ftsMatch(table, table.FTS, term))
	}

	if filter.UntaggedOnly {
		where = append(where, sq.Eq{"tags": ""})
	} else {
		for i, tag := range filter.Tags {
			if i == models.MaxFilterTags {
				break
			}
			where = append(where, tagMatch(table, tag.Name, true))
		}
	}

	switch filter.Visibility {
	case models.VisibilityPublic:
		where = append(where, sq.Eq{"shared": 1})
	case models.VisibilityPrivate:
		where = append(where, sq.Eq{"shared": 0})
	case models.VisibilityNone:
	}

	if filter.ReadLaterOnly {
		where = append(where, sq.Eq{"read_later": 1})
	}

	return where
}

func sortOrder(sort models.SortType) string {
	switch sort {
	case models.SortOldestFirst:
		return "time ASC"
	case models.SortTitleAsc:
		return "title ASC"
	case models.SortTitleDesc:
		return "title DESC"
	default:
		return "time DESC"
	}
}

// buildGetAllPostsQuery selects one page of posts. A negative limit is
// unbounded.
func buildGetAllPostsQuery(table PostsTable, filter models.PostFilter, sort models.SortType, limit, offset int) (string, []any, error) {
	query := sqlite.
		Select(postColumns...).
		From(table.Name).
		Where(buildPostFilter(table, filter)).
		OrderBy(sortOrder(sort))

	switch {
	case limit >= 0:
		query = query.Limit(uint64(limit)).Offset(uint64(max(offset, 0)))
	case offset > 0:
		// SQLite requires LIMIT before OFFSET
		query = query.Suffix("LIMIT -1 OFFSET ?", offset)
	}

	return query.ToSql()
}

// buildCountPostsQuery counts the rows of the filtered set, capped at limit.
func buildCountPostsQuery(table PostsTable, filter models.PostFilter, limit int) (string, []any, error) {
	inner := sq.
		Select("id").
		From(table.Name).
		Where(buildPostFilter(table, filter))
	if limit >= 0 {
		inner = inner.Limit(uint64(limit))
	}

	return sqlite.
		Select("COUNT(*)").
		FromSelect(inner, "filtered").
		ToSql()
}

// buildUpsertPostQuery renders the INSERT ... ON CONFLICT statement used by
// SavePosts. Every column is replaced on conflict.
func buildUpsertPostQuery(table PostsTable) (string, error) {
	set := make([]string, 0, len(postColumns)-1)
	for _, col := range postColumns[1:] {
		set = append(set, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	query, _, err := sqlite.
		Insert(table.Name).
		Columns(postColumns...).
		Values(make([]any, len(postColumns))...).
		Suffix("ON CONFLICT(id) DO UPDATE SET " + strings.Join(set, ", ")).
		ToSql()

	return query, err
}

func buildGetPostQuery(table PostsTable, id, url string) (string, []any, error) {
	return sqlite.
		Select(postColumns...).
		From(table.Name).
		Where(sq.Or{sq.Eq{"id": id}, sq.Eq{"url": url}}).
		Limit(1).
		ToSql()
}

func buildGetPendingSyncPostsQuery(table PostsTable) (string, []any, error) {
	return sqlite.
		Select(postColumns...).
		From(table.Name).
		Where(sq.NotEq{"pending_sync": nil}).
		OrderBy("rowid").
		ToSql()
}

// buildSelectTagsQuery selects the tag column of tagged rows, optionally
// narrowed to rows whose tags match prefix.
func buildSelectTagsQuery(table PostsTable, prefix string) (string, []any, error) {
	query := sqlite.
		Select("tags").
		From(table.Name).
		Where(sq.NotEq{"tags": ""})

	if prefix != "" {
		query = query.Where(tagMatch(table, prefix, true))
	}

	return query.ToSql()
}

func buildSelectRowsWithTagQuery(table PostsTable, tag string) (string, []any, error) {
	return sqlite.
		Select("id", "tags").
		From(table.Name).
		Where(tagMatch(table, tag, false)).
		ToSql()
}

func buildUpdateTagsQuery(table PostsTable) (string, error) {
	query, _, err := sqlite.
		Update(table.Name).
		Set("tags", "").
		Where(sq.Eq{"id": ""}).
		ToSql()
	return query, err
}

func buildDeleteQuery(table PostsTable, where sq.Sqlizer) (string, []any, error) {
	query := sqlite.Delete(table.Name)
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}
