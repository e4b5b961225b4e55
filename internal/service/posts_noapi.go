package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

type noAPIPostsService struct {
	posts  store.LocalPostsRepository
	mapper *mapper.PostMapper
	ids    IDGenerator

	logger *logger.Logger
}

// NewNoAPIPostsService returns the local-only [PostsService]. It never
// touches the network and never sets a pending marker.
func NewNoAPIPostsService(posts store.LocalPostsRepository, postMapper *mapper.PostMapper, ids IDGenerator, logger *logger.Logger) PostsService {
	return &noAPIPostsService{
		posts:  posts,
		mapper: postMapper,
		ids:    ids,
		logger: logger,
	}
}

func (s *noAPIPostsService) Update(context.Context) (string, error) {
	return s.mapper.Dates().NowAsTZ(), nil
}

// Add stores post as is. Saving a post whose URL is already stored under
// another id replaces that row.
func (s *noAPIPostsService) Add(ctx context.Context, post models.Post) (models.Post, error) {
	existing, err := s.posts.GetPost(ctx, post.ID, post.URL)
	switch {
	case err == nil:
		post.ID = existing.ID
		if post.Time == "" {
			post.Time = existing.Time
		}
	case !errors.Is(err, store.ErrPostNotFound):
		return models.Post{}, fmt.Errorf("look up local post: %w", err)
	}

	if post.ID == "" {
		post.ID = s.ids.Generate()
	}
	if post.Time == "" {
		post.Time = s.mapper.Dates().NowAsTZ()
	}
	post.DisplayDateTime = s.mapper.Dates().TZToDisplay(post.Time)
	post.PendingSync = models.PendingSyncNone

	if err = s.posts.SavePosts(ctx, []models.Post{post}); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noAPIPostsService.Add").
			Str("url", post.URL).
			Msg("failed to save post")
		return models.Post{}, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

func (s *noAPIPostsService) Delete(ctx context.Context, id, url string) error {
	return s.posts.DeletePost(ctx, id, url)
}

func (s *noAPIPostsService) GetAllPosts(ctx context.Context, q models.PostsQuery) <-chan models.PostListUpdate {
	return streamPosts(ctx, func(ctx context.Context, ch chan<- models.PostListUpdate) {
		emitLocal(ctx, ch, s.posts, q, true)
	})
}

func (s *noAPIPostsService) GetQueryResultSize(ctx context.Context, term string, tags []models.Tag) int {
	return queryResultSize(ctx, s.posts, term, tags)
}

func (s *noAPIPostsService) GetPost(ctx context.Context, id, url string) (models.Post, error) {
	post, err := s.posts.GetPost(ctx, id, url)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return post, err
}

func (s *noAPIPostsService) SearchExistingPostTag(ctx context.Context, tag string, currentTags []models.Tag) ([]string, error) {
	return searchExistingPostTag(ctx, s.posts, tag, currentTags)
}

func (s *noAPIPostsService) GetPendingSyncPosts(context.Context) ([]models.Post, error) {
	return nil, nil
}

func (s *noAPIPostsService) ClearCache(ctx context.Context) error {
	return s.posts.DeleteAllPosts(ctx)
}

func (s *noAPIPostsService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	return s.posts.GetAllTags(ctx)
}

func (s *noAPIPostsService) RenameTag(ctx context.Context, oldName, newName string) ([]models.Tag, error) {
	if oldName == "" || newName == "" {
		return nil, fmt.Errorf("%w: empty tag name", ErrInvalidRequest)
	}
	if err := s.posts.RenameTag(ctx, oldName, newName); err != nil {
		return nil, err
	}
	return s.posts.GetAllTags(ctx)
}
