package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

type pinboardPostsService struct {
	posts        store.LocalPostsRepository
	preferences  store.PreferencesRepository
	api          adapter.PinboardAdapter
	connectivity adapter.ConnectivityChecker
	mapper       *mapper.PostMapper
	ids          IDGenerator
	remote       remotePolicies
	sync         config.ClientSync
	refreshes    *refreshGate

	logger *logger.Logger
}

// NewPinboardPostsService returns the [PostsService] backed by a
// Pinboard-compatible remote and the posts table.
func NewPinboardPostsService(
	posts store.LocalPostsRepository,
	preferences store.PreferencesRepository,
	api adapter.PinboardAdapter,
	connectivity adapter.ConnectivityChecker,
	postMapper *mapper.PostMapper,
	ids IDGenerator,
	notifier UnauthorizedNotifier,
	syncCfg config.ClientSync,
	logger *logger.Logger,
) PostsService {
	return &pinboardPostsService{
		posts:        posts,
		preferences:  preferences,
		api:          api,
		connectivity: connectivity,
		mapper:       postMapper,
		ids:          ids,
		remote:       defaultRemotePolicies(notifier),
		sync:         syncCfg,
		refreshes:    newRefreshGate(),
		logger:       logger,
	}
}

func (s *pinboardPostsService) Update(ctx context.Context) (string, error) {
	update, err := remoteCall(ctx, s.remote, s.api.Update)
	if err != nil {
		return "", fmt.Errorf("posts/update: %w", err)
	}
	return update.UpdateTime, nil
}

func (s *pinboardPostsService) Add(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.ID == "" {
		post.ID = s.ids.Generate()
	}
	if post.Time == "" {
		post.Time = s.mapper.Dates().NowAsTZ()
	}
	post.DisplayDateTime = s.mapper.Dates().TZToDisplay(post.Time)

	if !s.connectivity.IsConnected(ctx) {
		return queueOffline(ctx, s.posts, post)
	}

	remote := mapper.PostToPinboard(post)
	req := models.PinboardAddRequest{
		URL:         post.URL,
		Title:       post.Title,
		Description: post.Description,
		Shared:      remote.Shared,
		ToRead:      remote.ToRead,
		Tags:        remote.Tags,
		Replace:     models.PinboardLiteralYes,
	}

	result, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.PinboardGenericResponse, error) {
		return s.api.AddPost(ctx, req)
	})
	if err != nil {
		if canQueueOffline(err) {
			log.Warn().Err(err).
				Str("func", "pinboardPostsService.Add").
				Str("url", post.URL).
				Msg("remote add failed, queueing post")
			return queueOffline(ctx, s.posts, post)
		}
		log.Err(err).
			Str("func", "pinboardPostsService.Add").
			Str("url", post.URL).
			Msg("remote add failed")
		return models.Post{}, fmt.Errorf("add post: %w", err)
	}

	switch code := result.Code(); code {
	case models.PinboardResultDone:
		if err = saveSynced(ctx, s.posts, post); err != nil {
			return models.Post{}, err
		}
		post.PendingSync = models.PendingSyncNone
		return post, nil
	case models.PinboardResultItemAlreadyExists:
		return s.GetPost(ctx, "", post.URL)
	default:
		return models.Post{}, &adapter.RemoteError{Code: code}
	}
}

func (s *pinboardPostsService) Delete(ctx context.Context, id, url string) error {
	log := logger.FromContext(ctx)

	if !s.connectivity.IsConnected(ctx) {
		return markDeletedOffline(ctx, s.posts, id, url)
	}

	// the remote delete must finish even if the caller goes away
	detached := context.WithoutCancel(ctx)
	result, err := remoteCall(detached, s.remote, func(ctx context.Context) (models.PinboardGenericResponse, error) {
		return s.api.DeletePost(ctx, url)
	})
	if err != nil {
		if canQueueOffline(err) {
			log.Warn().Err(err).
				Str("func", "pinboardPostsService.Delete").
				Str("url", url).
				Msg("remote delete failed, queueing deletion")
			return markDeletedOffline(ctx, s.posts, id, url)
		}
		return fmt.Errorf("delete post: %w", err)
	}

	if code := result.Code(); code != models.PinboardResultDone {
		return &adapter.RemoteError{Code: code}
	}

	return s.posts.DeletePost(detached, id, url)
}

func (s *pinboardPostsService) GetAllPosts(ctx context.Context, q models.PostsQuery) <-chan models.PostListUpdate {
	return streamPosts(ctx, func(ctx context.Context, ch chan<- models.PostListUpdate) {
		if !s.connectivity.IsConnected(ctx) {
			emitLocal(ctx, ch, s.posts, q, true)
			return
		}

		if !emitLocal(ctx, ch, s.posts, q, false) {
			return
		}

		err := s.refreshes.do(ctx, q.ForceRefresh, func(ctx context.Context) error {
			return s.refresh(ctx, q.ForceRefresh)
		})
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "pinboardPostsService.GetAllPosts").
				Msg("failed to refresh posts")
			emit(ctx, ch, models.PostListUpdate{Err: err})
			return
		}

		emitLocal(ctx, ch, s.posts, q, true)
	})
}

// refresh reloads the cache when the remote changed since the stored
// checkpoint or force is set. Synced rows are pruned only before the first
// page is saved.
func (s *pinboardPostsService) refresh(ctx context.Context, force bool) error {
	apiLastUpdate, err := s.Update(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || ctx.Err() != nil {
			return err
		}
		// without the remote checkpoint the page walk decides
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "pinboardPostsService.refresh").
			Msg("posts/update failed, using current time as checkpoint")
		apiLastUpdate = s.mapper.Dates().NowAsTZ()
	}

	lastUpdate, err := s.preferences.GetPreference(ctx, PrefPinboardLastUpdate)
	if err != nil {
		return fmt.Errorf("read last update: %w", err)
	}
	if !force && lastUpdate != "" && lastUpdate == apiLastUpdate {
		return nil
	}

	pageSize := s.sync.APIPageSize
	first, err := s.fetchPage(ctx, 0, pageSize)
	if err != nil {
		return err
	}

	if err = s.posts.DeleteAllSyncedPosts(ctx); err != nil {
		return fmt.Errorf("prune synced posts: %w", err)
	}
	if err = s.savePosts(ctx, first); err != nil {
		return err
	}
	if err = s.preferences.SetPreference(ctx, PrefPinboardLastUpdate, apiLastUpdate); err != nil {
		return fmt.Errorf("store last update: %w", err)
	}

	return s.fetchAdditionalPages(ctx, len(first))
}

// fetchAdditionalPages keeps paging while pages come back close enough to
// full; a page far below the page size means the listing is exhausted.
func (s *pinboardPostsService) fetchAdditionalPages(ctx context.Context, offset int) error {
	pageSize, threshold := s.sync.APIPageSize, s.sync.MalformedObjectThreshold
	if offset == 0 || pageSize-offset > threshold {
		return nil
	}

	for offset != 0 {
		page, err := s.fetchPage(ctx, offset, pageSize)
		if err != nil {
			return err
		}
		if err = s.savePosts(ctx, page); err != nil {
			return err
		}

		if len(page) > 0 && pageSize-len(page) < threshold {
			offset += len(page)
		} else {
			offset = 0
		}
	}

	return nil
}

func (s *pinboardPostsService) fetchPage(ctx context.Context, offset, limit int) ([]models.PinboardPost, error) {
	page, err := remoteCall(ctx, s.remote, func(ctx context.Context) ([]models.PinboardPost, error) {
		return s.api.GetAllPosts(ctx, offset, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("posts/all at %d: %w", offset, err)
	}
	return page, nil
}

func (s *pinboardPostsService) savePosts(ctx context.Context, page []models.PinboardPost) error {
	if len(page) == 0 {
		return nil
	}

	posts := make([]models.Post, 0, len(page))
	for _, p := range page {
		posts = append(posts, s.mapper.PinboardToPost(p))
	}
	if err := s.posts.SavePosts(ctx, posts); err != nil {
		return fmt.Errorf("save remote posts: %w", err)
	}
	return nil
}

func (s *pinboardPostsService) GetQueryResultSize(ctx context.Context, term string, tags []models.Tag) int {
	return queryResultSize(ctx, s.posts, term, tags)
}

func (s *pinboardPostsService) GetPost(ctx context.Context, id, url string) (models.Post, error) {
	post, err := s.posts.GetPost(ctx, id, url)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, err
	}
	if url == "" || !s.connectivity.IsConnected(ctx) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	resp, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.PinboardGetPostResponse, error) {
		return s.api.GetPost(ctx, url)
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("posts/get: %w", err)
	}
	if len(resp.Posts) == 0 {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidRequest, store.ErrPostNotFound)
	}

	return s.mapper.PinboardToPost(resp.Posts[0]), nil
}

func (s *pinboardPostsService) SearchExistingPostTag(ctx context.Context, tag string, currentTags []models.Tag) ([]string, error) {
	return searchExistingPostTag(ctx, s.posts, tag, currentTags)
}

func (s *pinboardPostsService) GetPendingSyncPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetPendingSyncPosts(ctx)
}

func (s *pinboardPostsService) ClearCache(ctx context.Context) error {
	if err := s.posts.DeleteAllPosts(ctx); err != nil {
		return err
	}
	return s.preferences.SetPreference(ctx, PrefPinboardLastUpdate, "")
}

// GetAllTags prefers the remote counts and falls back to the local index
// when the remote is unreachable.
func (s *pinboardPostsService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	if !s.connectivity.IsConnected(ctx) {
		return s.posts.GetAllTags(ctx)
	}

	counts, err := remoteCall(ctx, s.remote, s.api.GetAllTags)
	if err != nil {
		if canQueueOffline(err) {
			return s.posts.GetAllTags(ctx)
		}
		return nil, fmt.Errorf("tags/get: %w", err)
	}

	tags := make([]models.Tag, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, models.Tag{Name: name, Posts: count})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (s *pinboardPostsService) RenameTag(ctx context.Context, oldName, newName string) ([]models.Tag, error) {
	if oldName == "" || newName == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidRequest)
	}
	if !s.connectivity.IsConnected(ctx) {
		return nil, ErrOffline
	}

	result, err := remoteCall(ctx, s.remote, func(ctx context.Context) (models.PinboardGenericResponse, error) {
		return s.api.RenameTag(ctx, oldName, newName)
	})
	if err != nil {
		return nil, fmt.Errorf("tags/rename: %w", err)
	}
	if code := result.Code(); code != models.PinboardResultDone {
		return nil, &adapter.RemoteError{Code: code}
	}

	if err = s.posts.RenameTag(ctx, oldName, newName); err != nil {
		return nil, err
	}
	return s.GetAllTags(ctx)
}
