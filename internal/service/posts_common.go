package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/retry"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// remotePolicies are the retry policies wrapped around every remote call.
type remotePolicies struct {
	io           retry.Policy
	tooMany      retry.Policy
	unauthorized UnauthorizedNotifier
}

func defaultRemotePolicies(notifier UnauthorizedNotifier) remotePolicies {
	return remotePolicies{
		io:           retry.DefaultIOPolicy,
		tooMany:      retry.DefaultTooManyRequestsPolicy,
		unauthorized: notifier,
	}
}

// remoteCall runs fn with transient retries nested inside 429 backoff. An
// unauthorized failure is reported to the notifier before it is returned.
func remoteCall[T any](ctx context.Context, p remotePolicies, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := retry.Value(ctx, p.tooMany, adapter.IsTooManyRequests, func(ctx context.Context) (T, error) {
		return retry.Value(ctx, p.io, adapter.IsTransient, fn)
	})
	if err != nil && errors.Is(err, adapter.ErrUnauthorized) && p.unauthorized != nil {
		p.unauthorized.NotifyUnauthorized()
	}
	return v, err
}

// refreshGate keeps the remote refreshes of one backend from overlapping.
type refreshGate struct {
	sem *semaphore.Weighted
	// completed counts successful runs.
	completed atomic.Uint64
}

func newRefreshGate() *refreshGate {
	return &refreshGate{sem: semaphore.NewWeighted(1)}
}

// do runs fn once no other run is in flight. A call that is not forced is
// skipped when another run succeeded while it waited.
func (g *refreshGate) do(ctx context.Context, force bool, fn func(ctx context.Context) error) error {
	seen := g.completed.Load()

	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	if !force && g.completed.Load() != seen {
		return nil
	}

	if err := fn(ctx); err != nil {
		return err
	}
	g.completed.Add(1)
	return nil
}

// canQueueOffline reports whether a failed remote write may fall back to
// the pending queue.
func canQueueOffline(err error) bool {
	return adapter.IsTransient(err) || adapter.IsTooManyRequests(err)
}

// emit sends u unless ctx ends first.
func emit(ctx context.Context, ch chan<- models.PostListUpdate, u models.PostListUpdate) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

// streamPosts runs produce in its own goroutine and closes the channel when
// it returns.
func streamPosts(ctx context.Context, produce func(ctx context.Context, ch chan<- models.PostListUpdate)) <-chan models.PostListUpdate {
	ch := make(chan models.PostListUpdate)
	go func() {
		defer close(ch)
		produce(ctx, ch)
	}()
	return ch
}

// localPage reads one page for q from repo.
func localPage(ctx context.Context, repo store.LocalPostsRepository, q models.PostsQuery, upToDate bool) (models.PostListResult, error) {
	filter := q.Filter()

	total, err := repo.CountPosts(ctx, filter, q.CountBound())
	if err != nil {
		return models.PostListResult{}, fmt.Errorf("count local posts: %w", err)
	}

	var posts []models.Post
	if total > 0 {
		posts, err = repo.GetAllPosts(ctx, filter, q.SortType, q.PageLimit, q.PageOffset)
		if err != nil {
			return models.PostListResult{}, fmt.Errorf("list local posts: %w", err)
		}
	}

	return models.PostListResult{
		Posts:       posts,
		TotalCount:  total,
		UpToDate:    upToDate,
		CanPaginate: len(posts) == q.PageLimit,
	}, nil
}

// emitLocal reads a page and emits it, or emits the error. It reports
// whether the caller may go on.
func emitLocal(ctx context.Context, ch chan<- models.PostListUpdate, repo store.LocalPostsRepository, q models.PostsQuery, upToDate bool) bool {
	result, err := localPage(ctx, repo, q, upToDate)
	if err != nil {
		emit(ctx, ch, models.PostListUpdate{Err: err})
		return false
	}
	return emit(ctx, ch, models.PostListUpdate{Result: result})
}

func queryResultSize(ctx context.Context, repo store.LocalPostsRepository, term string, tags []models.Tag) int {
	count, err := repo.CountPosts(ctx, models.PostFilter{Term: term, Tags: tags}, -1)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "queryResultSize").
			Msg("failed to count posts")
		return 0
	}
	return count
}

func searchExistingPostTag(ctx context.Context, repo store.LocalPostsRepository, tag string, currentTags []models.Tag) ([]string, error) {
	exclude := make([]string, 0, len(currentTags))
	for _, t := range currentTags {
		exclude = append(exclude, t.Name)
	}
	return repo.SearchTags(ctx, tag, exclude, store.DefaultTagSuggestions)
}

// queueOffline stores post with the marker an offline edit calls for. A new
// row is ADD. A synced or deleted row becomes UPDATE. Pending ADD and UPDATE
// rows keep their marker. An existing row keeps its id and time.
func queueOffline(ctx context.Context, repo store.LocalPostsRepository, post models.Post) (models.Post, error) {
	existing, err := repo.GetPost(ctx, post.ID, post.URL)
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		post.PendingSync = models.PendingSyncAdd
	case err != nil:
		return models.Post{}, fmt.Errorf("look up local post: %w", err)
	default:
		post.ID = existing.ID
		post.Time = existing.Time
		post.DisplayDateTime = existing.DisplayDateTime

		switch existing.PendingSync {
		case models.PendingSyncNone, models.PendingSyncDelete:
			post.PendingSync = models.PendingSyncUpdate
		case models.PendingSyncAdd, models.PendingSyncUpdate:
			post.PendingSync = existing.PendingSync
		}
	}

	if err = repo.SavePosts(ctx, []models.Post{post}); err != nil {
		return models.Post{}, fmt.Errorf("queue post offline: %w", err)
	}
	return post, nil
}

// markDeletedOffline flags the post for deletion. A post the remote never
// saw is removed outright.
func markDeletedOffline(ctx context.Context, repo store.LocalPostsRepository, id, url string) error {
	existing, err := repo.GetPost(ctx, id, url)
	if err != nil {
		return fmt.Errorf("can't delete post %q offline: %w", url, err)
	}

	switch existing.PendingSync {
	case models.PendingSyncAdd:
		return repo.DeletePost(ctx, existing.ID, existing.URL)
	case models.PendingSyncNone, models.PendingSyncUpdate, models.PendingSyncDelete:
		existing.PendingSync = models.PendingSyncDelete
		return repo.SavePosts(ctx, []models.Post{existing})
	}
	return nil
}

// saveSynced drops the pending copy of post and stores post as synced.
func saveSynced(ctx context.Context, repo store.LocalPostsRepository, post models.Post) error {
	if err := repo.DeletePendingSyncPost(ctx, post.URL); err != nil {
		return fmt.Errorf("drop pending copy: %w", err)
	}
	post.PendingSync = models.PendingSyncNone
	if err := repo.SavePosts(ctx, []models.Post{post}); err != nil {
		return fmt.Errorf("save synced post: %w", err)
	}
	return nil
}
