package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
	"github.com/go-resty/resty/v2"
)

type linkdingAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewLinkdingAdapter constructs the HTTP implementation of [LinkdingAdapter].
// Requests are authenticated with "Authorization: Token <token>".
func NewLinkdingAdapter(cfg config.ClientAdapter, logger *logger.Logger) (LinkdingAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Linkding.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid linkding address: %w", err)
	}

	return &linkdingAdapter{
		client: utils.NewJSONHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Linkding.Token),
		logger: logger,
	}, nil
}

func (l *linkdingAdapter) GetBookmarks(ctx context.Context, offset, limit int) (models.LinkdingBookmarkPage, error) {
	var page models.LinkdingBookmarkPage

	resp, err := l.authedRequest(ctx).
		SetQueryParams(pageParams(offset, limit)).
		Get("/api/bookmarks/")
	if err = decodeResponse("get bookmarks", resp, err, &page); err != nil {
		return models.LinkdingBookmarkPage{}, err
	}

	return page, nil
}

func (l *linkdingAdapter) GetBookmark(ctx context.Context, id string) (models.LinkdingBookmark, error) {
	var bookmark models.LinkdingBookmark

	resp, err := l.authedRequest(ctx).Get(bookmarkPath(id))
	if err = decodeResponse("get bookmark", resp, err, &bookmark); err != nil {
		return models.LinkdingBookmark{}, err
	}

	return bookmark, nil
}

func (l *linkdingAdapter) CreateBookmark(ctx context.Context, bookmark models.LinkdingBookmark) (models.LinkdingBookmark, error) {
	var created models.LinkdingBookmark

	resp, err := l.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(bookmark).
		Post("/api/bookmarks/")
	if err = decodeResponse("create bookmark", resp, err, &created); err != nil {
		return models.LinkdingBookmark{}, err
	}

	return created, nil
}

func (l *linkdingAdapter) UpdateBookmark(ctx context.Context, id string, bookmark models.LinkdingBookmark) (models.LinkdingBookmark, error) {
	var updated models.LinkdingBookmark

	resp, err := l.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(bookmark).
		Put(bookmarkPath(id))
	if err = decodeResponse("update bookmark", resp, err, &updated); err != nil {
		return models.LinkdingBookmark{}, err
	}

	return updated, nil
}

func (l *linkdingAdapter) DeleteBookmark(ctx context.Context, id string) error {
	resp, err := l.authedRequest(ctx).Delete(bookmarkPath(id))
	if err != nil {
		return mapTransportError("delete bookmark", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	return nil
}

func (l *linkdingAdapter) GetTags(ctx context.Context, offset, limit int) (models.LinkdingTagPage, error) {
	var page models.LinkdingTagPage

	resp, err := l.authedRequest(ctx).
		SetQueryParams(pageParams(offset, limit)).
		Get("/api/tags/")
	if err = decodeResponse("get tags", resp, err, &page); err != nil {
		return models.LinkdingTagPage{}, err
	}

	return page, nil
}

func (l *linkdingAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := l.client.R().SetContext(ctx)
	if l.token != "" {
		req.SetHeader("Authorization", "Token "+l.token)
	}
	return req
}

func bookmarkPath(id string) string {
	return "/api/bookmarks/" + url.PathEscape(id) + "/"
}

func pageParams(offset, limit int) map[string]string {
	params := map[string]string{}
	if offset > 0 {
		params["offset"] = strconv.Itoa(offset)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return params
}

func decodeResponse(op string, resp *resty.Response, err error, out any) error {
	if err != nil {
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrDecodingResponse, err)
	}
	return nil
}
