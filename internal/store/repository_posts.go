package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// DefaultTagSuggestions is the number of tags returned for an empty prefix.
const DefaultTagSuggestions = 20

// postsRepository is the SQLite implementation of [LocalPostsRepository]
// over one [PostsTable].
type postsRepository struct {
	*DB
	table  PostsTable
	dates  *mapper.DateFormatter
	logger *logger.Logger
}

// NewPostsRepository returns a repository over table. dates fills
// [models.Post.DisplayDateTime] of every loaded post; nil leaves it empty.
func NewPostsRepository(db *DB, table PostsTable, dates *mapper.DateFormatter, logger *logger.Logger) LocalPostsRepository {
	table.Syntax = db.FTS()
	return &postsRepository{
		DB:     db,
		table:  table,
		dates:  dates,
		logger: logger,
	}
}

// SavePosts upserts posts in one transaction. A failure rolls back the
// whole batch.
func (r *postsRepository) SavePosts(ctx context.Context, posts []models.Post) error {
	log := logger.FromContext(ctx)

	if len(posts) == 0 {
		return nil
	}

	query, err := buildUpsertPostQuery(r.table)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.SavePosts").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "postsRepository.SavePosts").
			Int("count", len(posts)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "postsRepository.SavePosts").
			Int("count", len(posts)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, post := range posts {
		if _, err = stmt.ExecContext(ctx, postArgs(post)...); err != nil {
			log.Err(err).
				Str("func", "postsRepository.SavePosts").
				Int("iteration", idx+1).
				Int("total", len(posts)).
				Str("id", post.ID).
				Msg("failed to execute upsert")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "postsRepository.SavePosts").
			Int("count", len(posts)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *postsRepository) CountPosts(ctx context.Context, filter models.PostFilter, limit int) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPostsQuery(r.table, filter, limit)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.CountPosts").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "postsRepository.CountPosts").
			Str("table", r.table.Name).
			Msg("failed to count posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context, filter models.PostFilter, sort models.SortType, limit, offset int) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllPostsQuery(r.table, filter, sort, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.GetAllPosts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "postsRepository.GetAllPosts", query, args)
}

func (r *postsRepository) GetPost(ctx context.Context, id, url string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(r.table, id, url)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.GetPost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := r.scanPost(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "postsRepository.GetPost").
			Str("id", id).
			Str("url", url).
			Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postsRepository) GetPendingSyncPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPendingSyncPostsQuery(r.table)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.GetPendingSyncPosts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "postsRepository.GetPendingSyncPosts", query, args)
}

func (r *postsRepository) DeleteAllPosts(ctx context.Context) error {
	return r.delete(ctx, "postsRepository.DeleteAllPosts", nil)
}

func (r *postsRepository) DeleteAllSyncedPosts(ctx context.Context) error {
	return r.delete(ctx, "postsRepository.DeleteAllSyncedPosts", sq.Eq{"pending_sync": nil})
}

func (r *postsRepository) DeletePost(ctx context.Context, id, url string) error {
	return r.delete(ctx, "postsRepository.DeletePost", sq.Or{sq.Eq{"id": id}, sq.Eq{"url": url}})
}

func (r *postsRepository) DeletePendingSyncPost(ctx context.Context, url string) error {
	return r.delete(ctx, "postsRepository.DeletePendingSyncPost", sq.And{
		sq.Eq{"url": url},
		sq.NotEq{"pending_sync": nil},
	})
}

// SearchTags returns up to limit tag names. With a prefix, tags starting
// with it (case-insensitive) are returned; without one, the most used tags.
// Names in exclude are skipped. Ties in usage are broken by name.
func (r *postsRepository) SearchTags(ctx context.Context, prefix string, exclude []string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)

	counts, err := r.tagCounts(ctx, "postsRepository.SearchTags", prefix)
	if err != nil {
		return nil, err
	}

	lowerPrefix := strings.ToLower(prefix)
	tags := make([]models.Tag, 0, len(counts))
	for _, tag := range counts {
		if slices.Contains(exclude, tag.Name) {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(tag.Name), lowerPrefix) {
			continue
		}
		tags = append(tags, tag)
	}

	slices.SortStableFunc(tags, func(a, b models.Tag) int {
		if c := cmp.Compare(b.Posts, a.Posts); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	if limit >= 0 && len(tags) > limit {
		tags = tags[:limit]
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}

// GetAllTags returns every tag with its usage count, sorted by name.
func (r *postsRepository) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	return r.tagCounts(ctx, "postsRepository.GetAllTags", "")
}

// RenameTag rewrites the tag column of every post carrying oldName.
// Renaming to an existing tag merges the two.
func (r *postsRepository) RenameTag(ctx context.Context, oldName, newName string) error {
	log := logger.FromContext(ctx)

	if oldName == "" || oldName == newName {
		return nil
	}

	selectQuery, args, err := buildSelectRowsWithTagQuery(r.table, oldName)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.RenameTag").Msg("failed to build select query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	updateQuery, err := buildUpdateTagsQuery(r.table)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.RenameTag").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.RenameTag").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	type taggedRow struct {
		id   string
		tags string
	}

	rows, err := tx.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "postsRepository.RenameTag").Str("old", oldName).Msg("failed to select tagged rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var affected []taggedRow
	for rows.Next() {
		var row taggedRow
		if err = rows.Scan(&row.id, &row.tags); err != nil {
			rows.Close()
			log.Err(err).Str("func", "postsRepository.RenameTag").Msg("failed to scan tagged row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		affected = append(affected, row)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		log.Err(err).Str("func", "postsRepository.RenameTag").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	for _, row := range affected {
		names := mapper.TagNamesFromString(row.tags)
		idx := slices.Index(names, oldName)
		if idx < 0 {
			continue
		}
		names[idx] = newName

		if _, err = tx.ExecContext(ctx, updateQuery, mapper.TagNamesToString(names), row.id); err != nil {
			log.Err(err).
				Str("func", "postsRepository.RenameTag").
				Str("id", row.id).
				Msg("failed to update tags")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "postsRepository.RenameTag").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// tagCounts tokenizes the tag column of every tagged row (narrowed to rows
// matching prefix when given) and counts each name. The result is sorted by
// name.
func (r *postsRepository) tagCounts(ctx context.Context, funcName, prefix string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTagsQuery(r.table, prefix)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", r.table.Name).Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tags string
		if err = rows.Scan(&tags); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan tags row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		for _, name := range mapper.TagNamesFromString(tags) {
			counts[name]++
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]models.Tag, 0, len(counts))
	for name, n := range counts {
		result = append(result, models.Tag{Name: name, Posts: n})
	}
	slices.SortFunc(result, func(a, b models.Tag) int { return cmp.Compare(a.Name, b.Name) })

	return result, nil
}

func (r *postsRepository) delete(ctx context.Context, funcName string, where sq.Sqlizer) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.table, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Str("table", r.table.Name).Msg("failed to delete posts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *postsRepository) queryPosts(ctx context.Context, funcName, query string, args []any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", r.table.Name).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		post, scanErr := r.scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *postsRepository) scanPost(row rowScanner) (models.Post, error) {
	var (
		post    models.Post
		shared  bool
		tags    string
		pending sql.NullString
	)

	err := row.Scan(
		&post.ID,
		&post.URL,
		&post.Title,
		&post.Description,
		&post.Notes,
		&post.WebsiteTitle,
		&post.WebsiteDescription,
		&post.Time,
		&shared,
		&post.ReadLater,
		&post.IsArchived,
		&tags,
		&pending,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.Private = !shared
	post.Tags = mapper.TagsFromString(tags)
	post.PendingSync = models.ParsePendingSync(pending.String)
	if r.dates != nil {
		post.DisplayDateTime = r.dates.TZToDisplay(post.Time)
	}

	return post, nil
}

// postArgs returns the values of post in [postColumns] order.
func postArgs(post models.Post) []any {
	var pending sql.NullString
	if post.PendingSync.IsPending() {
		pending = sql.NullString{String: string(post.PendingSync), Valid: true}
	}

	return []any{
		post.ID,
		post.URL,
		post.Title,
		post.Description,
		post.Notes,
		post.WebsiteTitle,
		post.WebsiteDescription,
		post.Time,
		!post.Private,
		post.ReadLater,
		post.IsArchived,
		mapper.TagsToString(post.Tags),
		pending,
	}
}
