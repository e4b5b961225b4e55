package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

type postsServiceProxy struct {
	modes    AppModeSource
	backends map[models.AppMode]PostsService

	mu       sync.Mutex
	mode     models.AppMode
	delegate PostsService

	logger *logger.Logger
}

// NewPostsServiceProxy returns a [PostsService] that forwards each call to
// the backend registered for the current mode. Calls made while the mode
// is unset wait for it.
func NewPostsServiceProxy(modes AppModeSource, backends map[models.AppMode]PostsService, logger *logger.Logger) PostsService {
	return &postsServiceProxy{
		modes:    modes,
		backends: backends,
		logger:   logger,
	}
}

// resolve returns the delegate for the current mode, swapping the cached
// one when the mode changed since the last call.
func (p *postsServiceProxy) resolve(ctx context.Context) (PostsService, error) {
	mode, err := p.modes.AwaitMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("await app mode: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.delegate != nil && p.mode == mode {
		return p.delegate, nil
	}

	delegate, ok := p.backends[mode]
	if !ok || delegate == nil {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotConfigured, mode)
	}

	p.logger.Debug().
		Str("func", "postsServiceProxy.resolve").
		Str("mode", mode.String()).
		Msg("switching posts backend")
	p.mode, p.delegate = mode, delegate
	return delegate, nil
}

func (p *postsServiceProxy) Update(ctx context.Context) (string, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return "", err
	}
	return svc.Update(ctx)
}

func (p *postsServiceProxy) Add(ctx context.Context, post models.Post) (models.Post, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return models.Post{}, err
	}
	return svc.Add(ctx, post)
}

func (p *postsServiceProxy) Delete(ctx context.Context, id, url string) error {
	svc, err := p.resolve(ctx)
	if err != nil {
		return err
	}
	return svc.Delete(ctx, id, url)
}

func (p *postsServiceProxy) GetAllPosts(ctx context.Context, q models.PostsQuery) <-chan models.PostListUpdate {
	svc, err := p.resolve(ctx)
	if err != nil {
		return streamPosts(ctx, func(ctx context.Context, ch chan<- models.PostListUpdate) {
			emit(ctx, ch, models.PostListUpdate{Err: err})
		})
	}
	return svc.GetAllPosts(ctx, q)
}

func (p *postsServiceProxy) GetQueryResultSize(ctx context.Context, term string, tags []models.Tag) int {
	svc, err := p.resolve(ctx)
	if err != nil {
		return 0
	}
	return svc.GetQueryResultSize(ctx, term, tags)
}

func (p *postsServiceProxy) GetPost(ctx context.Context, id, url string) (models.Post, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return models.Post{}, err
	}
	return svc.GetPost(ctx, id, url)
}

func (p *postsServiceProxy) SearchExistingPostTag(ctx context.Context, tag string, currentTags []models.Tag) ([]string, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return svc.SearchExistingPostTag(ctx, tag, currentTags)
}

func (p *postsServiceProxy) GetPendingSyncPosts(ctx context.Context) ([]models.Post, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return svc.GetPendingSyncPosts(ctx)
}

func (p *postsServiceProxy) ClearCache(ctx context.Context) error {
	svc, err := p.resolve(ctx)
	if err != nil {
		return err
	}
	return svc.ClearCache(ctx)
}

func (p *postsServiceProxy) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return svc.GetAllTags(ctx)
}

func (p *postsServiceProxy) RenameTag(ctx context.Context, oldName, newName string) ([]models.Tag, error) {
	svc, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return svc.RenameTag(ctx, oldName, newName)
}
