package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

type linkdingPostsService struct {
	posts        store.LocalPostsRepository
	preferences  store.PreferencesRepository
	api          adapter.LinkdingAdapter
	connectivity adapter.ConnectivityChecker
	mapper       *mapper.PostMapper
	ids          IDGenerator
	remote       remotePolicies
	sync         config.ClientSync
	refreshes    *refreshGate
	now          func() time.Time

	logger *logger.Logger
}

// NewLinkdingPostsService returns the [PostsService] backed by a
// Linkding-compatible remote and the linkding_bookmarks table.
func NewLinkdingPostsService(
	posts store.LocalPostsRepository,
	preferences store.PreferencesRepository,
	api adapter.LinkdingAdapter,
	connectivity adapter.ConnectivityChecker,
	postMapper *mapper.PostMapper,
	ids IDGenerator,
	notifier UnauthorizedNotifier,
	syncCfg config.ClientSync,
	logger *logger.Logger,
) PostsService {
	return &linkdingPostsService{
		posts:        posts,
		preferences:  preferences,
		api:          api,
		connectivity: connectivity,
		mapper:       postMapper,
		ids:          ids,
		remote:       defaultRemotePolicies(notifier),
		sync:         syncCfg,
		refreshes:    newRefreshGate(),
		now:          time.Now,
		logger:       logger,
	}
}

// Update checks that the remote answers and returns now: Linkding has no
// last-change endpoint.
func (s *linkdingPostsService) Update(ctx context.Context) (string, error) {
	_, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.LinkdingBookmarkPage, error) {
		return s.api.GetBookmarks(ctx, 0, 1)
	})
	if err != nil {
		return "", fmt.Errorf("get bookmarks: %w", err)
	}
	return s.mapper.Dates().NowAsTZ(), nil
}

func (s *linkdingPostsService) Add(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.Time == "" {
		post.Time = s.mapper.Dates().NowAsTZ()
	}
	post.DisplayDateTime = s.mapper.Dates().TZToDisplay(post.Time)

	if !s.connectivity.IsConnected(ctx) {
		return s.addOffline(ctx, post)
	}

	bookmark := mapper.PostToLinkding(post)
	saved, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.LinkdingBookmark, error) {
		if bookmark.ID != nil {
			return s.api.UpdateBookmark(ctx, post.ID, bookmark)
		}
		return s.api.CreateBookmark(ctx, bookmark)
	})
	if err != nil {
		if canQueueOffline(err) {
			log.Warn().Err(err).
				Str("func", "linkdingPostsService.Add").
				Str("url", post.URL).
				Msg("remote add failed, queueing bookmark")
			return s.addOffline(ctx, post)
		}
		log.Err(err).
			Str("func", "linkdingPostsService.Add").
			Str("url", post.URL).
			Msg("remote add failed")
		return models.Post{}, fmt.Errorf("add bookmark: %w", err)
	}

	result := s.mapper.LinkdingToPost(saved)
	if err = saveSynced(ctx, s.posts, result); err != nil {
		return models.Post{}, err
	}
	return result, nil
}

func (s *linkdingPostsService) addOffline(ctx context.Context, post models.Post) (models.Post, error) {
	if post.ID == "" {
		post.ID = s.ids.Generate()
	}
	return queueOffline(ctx, s.posts, post)
}

func (s *linkdingPostsService) Delete(ctx context.Context, id, url string) error {
	log := logger.FromContext(ctx)

	if !s.connectivity.IsConnected(ctx) {
		return markDeletedOffline(ctx, s.posts, id, url)
	}

	// a post without a numeric id was never created remotely
	if _, err := strconv.Atoi(id); err != nil {
		return s.posts.DeletePost(ctx, id, url)
	}

	detached := context.WithoutCancel(ctx)
	_, err := remoteCall(detached, s.remote, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteBookmark(ctx, id)
	})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		if canQueueOffline(err) {
			log.Warn().Err(err).
				Str("func", "linkdingPostsService.Delete").
				Str("id", id).
				Msg("remote delete failed, queueing deletion")
			return markDeletedOffline(ctx, s.posts, id, url)
		}
		return fmt.Errorf("delete bookmark: %w", err)
	}

	return s.posts.DeletePost(detached, id, url)
}

func (s *linkdingPostsService) GetAllPosts(ctx context.Context, q models.PostsQuery) <-chan models.PostListUpdate {
	return streamPosts(ctx, func(ctx context.Context, ch chan<- models.PostListUpdate) {
		if !s.connectivity.IsConnected(ctx) {
			emitLocal(ctx, ch, s.posts, q, true)
			return
		}

		due, err := s.refreshDue(ctx, q.ForceRefresh)
		if err != nil {
			emit(ctx, ch, models.PostListUpdate{Err: err})
			return
		}
		if !due {
			emitLocal(ctx, ch, s.posts, q, true)
			return
		}

		if !emitLocal(ctx, ch, s.posts, q, false) {
			return
		}

		if err = s.refreshes.do(ctx, q.ForceRefresh, s.refresh); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "linkdingPostsService.GetAllPosts").
				Msg("failed to refresh bookmarks")
			emit(ctx, ch, models.PostListUpdate{Err: err})
			return
		}

		emitLocal(ctx, ch, s.posts, q, true)
	})
}

// refreshDue reports whether the last full fetch is older than the
// throttle.
func (s *linkdingPostsService) refreshDue(ctx context.Context, force bool) (bool, error) {
	if force {
		return true, nil
	}

	last, err := s.preferences.GetPreference(ctx, PrefLinkdingLastUpdate)
	if err != nil {
		return false, fmt.Errorf("read last update: %w", err)
	}
	lastFetch, err := time.Parse(time.RFC3339, last)
	if err != nil {
		return true, nil
	}

	return s.now().Sub(lastFetch) > s.sync.LinkdingRefreshThrottle, nil
}

// refresh replaces the synced rows with the first page, then appends the
// remaining pages announced by the envelope count.
func (s *linkdingPostsService) refresh(ctx context.Context) error {
	pageSize := s.sync.APIPageSize

	first, err := s.fetchPage(ctx, 0, pageSize)
	if err != nil {
		return err
	}

	if err = s.posts.DeleteAllSyncedPosts(ctx); err != nil {
		return fmt.Errorf("prune synced bookmarks: %w", err)
	}
	if err = s.savePosts(ctx, first.Results); err != nil {
		return err
	}
	if err = s.preferences.SetPreference(ctx, PrefLinkdingLastUpdate, s.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("store last update: %w", err)
	}

	for offset := len(first.Results); offset < first.Count; {
		page, err := s.fetchPage(ctx, offset, pageSize)
		if err != nil {
			return err
		}
		if len(page.Results) == 0 {
			break
		}
		if err = s.savePosts(ctx, page.Results); err != nil {
			return err
		}
		offset += len(page.Results)
	}

	return nil
}

func (s *linkdingPostsService) fetchPage(ctx context.Context, offset, limit int) (models.LinkdingBookmarkPage, error) {
	page, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.LinkdingBookmarkPage, error) {
		return s.api.GetBookmarks(ctx, offset, limit)
	})
	if err != nil {
		return models.LinkdingBookmarkPage{}, fmt.Errorf("get bookmarks at %d: %w", offset, err)
	}
	return page, nil
}

func (s *linkdingPostsService) savePosts(ctx context.Context, bookmarks []models.LinkdingBookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}

	posts := make([]models.Post, 0, len(bookmarks))
	for _, b := range bookmarks {
		posts = append(posts, s.mapper.LinkdingToPost(b))
	}
	if err := s.posts.SavePosts(ctx, posts); err != nil {
		return fmt.Errorf("save remote bookmarks: %w", err)
	}
	return nil
}

func (s *linkdingPostsService) GetQueryResultSize(ctx context.Context, term string, tags []models.Tag) int {
	return queryResultSize(ctx, s.posts, term, tags)
}

func (s *linkdingPostsService) GetPost(ctx context.Context, id, url string) (models.Post, error) {
	post, err := s.posts.GetPost(ctx, id, url)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, err
	}
	if _, convErr := strconv.Atoi(id); convErr != nil || !s.connectivity.IsConnected(ctx) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	bookmark, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.LinkdingBookmark, error) {
		return s.api.GetBookmark(ctx, id)
	})
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidRequest, store.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("get bookmark: %w", err)
	}

	return s.mapper.LinkdingToPost(bookmark), nil
}

func (s *linkdingPostsService) SearchExistingPostTag(ctx context.Context, tag string, currentTags []models.Tag) ([]string, error) {
	return searchExistingPostTag(ctx, s.posts, tag, currentTags)
}

func (s *linkdingPostsService) GetPendingSyncPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetPendingSyncPosts(ctx)
}

func (s *linkdingPostsService) ClearCache(ctx context.Context) error {
	if err := s.posts.DeleteAllPosts(ctx); err != nil {
		return err
	}
	return s.preferences.SetPreference(ctx, PrefLinkdingLastUpdate, "")
}

// GetAllTags counts tags in the local cache. Linkding's tag resource has no
// usage counts, so remote tags unused by any cached bookmark are added with
// a zero count.
func (s *linkdingPostsService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.posts.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}
	if !s.connectivity.IsConnected(ctx) {
		return tags, nil
	}

	remote, err := s.remoteTagNames(ctx)
	if err != nil {
		if canQueueOffline(err) {
			return tags, nil
		}
		return nil, err
	}

	known := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		known[t.Name] = struct{}{}
	}
	for _, name := range remote {
		if _, ok := known[name]; !ok {
			tags = append(tags, models.Tag{Name: name})
			known[name] = struct{}{}
		}
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (s *linkdingPostsService) remoteTagNames(ctx context.Context) ([]string, error) {
	var names []string
	for offset := 0; ; {
		page, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.LinkdingTagPage, error) {
			return s.api.GetTags(ctx, offset, s.sync.APIPageSize)
		})
		if err != nil {
			return nil, fmt.Errorf("get tags at %d: %w", offset, err)
		}
		for _, t := range page.Results {
			names = append(names, t.Name)
		}

		offset += len(page.Results)
		if len(page.Results) == 0 || offset >= page.Count {
			return names, nil
		}
	}
}

func (s *linkdingPostsService) RenameTag(context.Context, string, string) ([]models.Tag, error) {
	return nil, ErrOperationNotSupported
}
