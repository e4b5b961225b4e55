package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

type pendingSyncService struct {
	posts PostsService

	logger *logger.Logger
}

// NewPendingSyncService returns a [PendingSyncService] that replays through
// posts, normally the proxy.
func NewPendingSyncService(posts PostsService, logger *logger.Logger) PendingSyncService {
	return &pendingSyncService{posts: posts, logger: logger}
}

func (s *pendingSyncService) SyncPending(ctx context.Context) error {
	log := logger.FromContext(ctx)

	pending, err := s.posts.GetPendingSyncPosts(ctx)
	if err != nil {
		return fmt.Errorf("list pending posts: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	log.Debug().Int("count", len(pending)).Msg("replaying pending posts")

	var errs []error
	for _, post := range pending {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		if err = s.replay(ctx, post); err != nil {
			log.Err(err).
				Str("func", "pendingSyncService.SyncPending").
				Str("url", post.URL).
				Str("pending_sync", string(post.PendingSync)).
				Msg("failed to replay pending post")
			errs = append(errs, fmt.Errorf("%s %s: %w", post.PendingSync, post.URL, err))
		}
	}

	return errors.Join(errs...)
}

func (s *pendingSyncService) replay(ctx context.Context, post models.Post) error {
	switch post.PendingSync {
	case models.PendingSyncAdd, models.PendingSyncUpdate:
		_, err := s.posts.Add(ctx, post)
		return err
	case models.PendingSyncDelete:
		return s.posts.Delete(ctx, post.ID, post.URL)
	case models.PendingSyncNone:
		return nil
	}
	return nil
}

type cacheRefresher struct {
	posts PostsService
}

// NewCacheRefresher returns a [CacheRefresher] that drains a one-row
// GetAllPosts query so the backend reconciles its cache with the remote.
func NewCacheRefresher(posts PostsService) CacheRefresher {
	return &cacheRefresher{posts: posts}
}

func (r *cacheRefresher) Refresh(ctx context.Context) error {
	var first error
	for update := range r.posts.GetAllPosts(ctx, models.PostsQuery{CountLimit: 1, PageLimit: 1}) {
		if update.Err != nil && first == nil {
			first = update.Err
		}
	}
	if first != nil {
		return fmt.Errorf("refresh posts: %w", first)
	}
	return ctx.Err()
}
