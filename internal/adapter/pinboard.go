package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Pinboard request size limits.
const (
	// PinboardMaxTextLength bounds title and tags.
	PinboardMaxTextLength = 255
	// PinboardMaxURILength is the URI length the API accepts.
	PinboardMaxURILength = 3000
	// PinboardSafeURILength is used after the API rejected a URI as too long.
	PinboardSafeURILength = 2000
	// PinboardBaseURLLength reserves room for the base URL, endpoint and
	// auth token.
	PinboardBaseURLLength = 90
)

type pinboardAdapter struct {
	client  *utils.HTTPClient
	limiter *ratelimit.Runner
	token   string

	logger *logger.Logger
}

// NewPinboardAdapter constructs the HTTP implementation of [PinboardAdapter].
// It owns its rate limiter, spaced by cfg.Pinboard.RateLimit.
//
// Returns an error if cfg.Pinboard.BaseURL cannot be parsed as a valid URL.
func NewPinboardAdapter(cfg config.ClientAdapter, logger *logger.Logger) (PinboardAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Pinboard.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pinboard address: %w", err)
	}

	return &pinboardAdapter{
		client:  utils.NewJSONHTTPClient(baseURL, cfg.RequestTimeout),
		limiter: ratelimit.NewRunner(cfg.Pinboard.RateLimit),
		token:   strings.TrimSpace(cfg.Pinboard.AuthToken),
		logger:  logger,
	}, nil
}

func (p *pinboardAdapter) Update(ctx context.Context) (models.PinboardUpdate, error) {
	var update models.PinboardUpdate
	if err := p.getJSON(ctx, "posts/update", nil, &update); err != nil {
		return models.PinboardUpdate{}, err
	}
	return update, nil
}

func (p *pinboardAdapter) AddPost(ctx context.Context, req models.PinboardAddRequest) (models.PinboardGenericResponse, error) {
	req.Title = truncate(req.Title, PinboardMaxTextLength)
	req.Tags = truncate(req.Tags, PinboardMaxTextLength)
	description := req.Description

	var result models.PinboardGenericResponse
	err := p.getJSON(ctx, "posts/add", addPostParams(req, description, PinboardMaxURILength), &result)
	if errors.Is(err, ErrURITooLong) {
		p.logger.Debug().
			Str("func", "pinboardAdapter.AddPost").
			Str("url", req.URL).
			Msg("uri too long, retrying with safe limit")
		err = p.getJSON(ctx, "posts/add", addPostParams(req, description, PinboardSafeURILength), &result)
	}
	if err != nil {
		return models.PinboardGenericResponse{}, err
	}

	return result, nil
}

// addPostParams builds the posts/add query, trimming the description so
// the whole URI fits in uriLimit once every value is query-escaped.
func addPostParams(req models.PinboardAddRequest, description string, uriLimit int) map[string]string {
	params := map[string]string{
		"url":         req.URL,
		"description": req.Title,
	}
	optional := map[string]string{
		"shared":  req.Shared,
		"toread":  req.ToRead,
		"tags":    req.Tags,
		"replace": req.Replace,
	}
	for k, v := range optional {
		if v != "" {
			params[k] = v
		}
	}

	used := PinboardBaseURLLength
	for k, v := range params {
		used += encodedParamLength(k, v)
	}

	if description != "" {
		budget := uriLimit - used - encodedParamLength("extended", "")
		if d := truncateEscaped(description, budget); d != "" {
			params["extended"] = d
		}
	}

	return params
}

// encodedParamLength is the length of "&k=v" in an encoded query.
func encodedParamLength(k, v string) int {
	return len(k) + 2 + len(url.QueryEscape(v))
}

// truncateEscaped returns the longest rune prefix of s whose query-escaped
// form is at most n bytes.
func truncateEscaped(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(url.QueryEscape(s)) <= n {
		return s
	}

	used := 0
	for i, r := range s {
		used += len(url.QueryEscape(string(r)))
		if used > n {
			return s[:i]
		}
	}
	return s
}

func (p *pinboardAdapter) DeletePost(ctx context.Context, href string) (models.PinboardGenericResponse, error) {
	var result models.PinboardGenericResponse
	if err := p.getJSON(ctx, "posts/delete", map[string]string{"url": href}, &result); err != nil {
		return models.PinboardGenericResponse{}, err
	}
	return result, nil
}

func (p *pinboardAdapter) GetPost(ctx context.Context, href string) (models.PinboardGetPostResponse, error) {
	var result models.PinboardGetPostResponse
	if err := p.getJSON(ctx, "posts/get", map[string]string{"url": href}, &result); err != nil {
		return models.PinboardGetPostResponse{}, err
	}
	return result, nil
}

func (p *pinboardAdapter) GetAllPosts(ctx context.Context, offset, limit int) ([]models.PinboardPost, error) {
	params := map[string]string{}
	if offset > 0 {
		params["start"] = strconv.Itoa(offset)
	}
	if limit > 0 {
		params["results"] = strconv.Itoa(limit)
	}

	var posts []models.PinboardPost
	if err := p.getJSON(ctx, "posts/all", params, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *pinboardAdapter) GetAllTags(ctx context.Context) (map[string]int, error) {
	var counts map[string]models.PinboardTagCount
	if err := p.getJSON(ctx, "tags/get", nil, &counts); err != nil {
		return nil, err
	}

	tags := make(map[string]int, len(counts))
	for name, count := range counts {
		tags[name] = int(count)
	}
	return tags, nil
}

func (p *pinboardAdapter) RenameTag(ctx context.Context, oldName, newName string) (models.PinboardGenericResponse, error) {
	var result models.PinboardGenericResponse
	params := map[string]string{"old": oldName, "new": newName}
	if err := p.getJSON(ctx, "tags/rename", params, &result); err != nil {
		return models.PinboardGenericResponse{}, err
	}
	return result, nil
}

// getJSON performs one rate-limited GET and decodes the body into out.
func (p *pinboardAdapter) getJSON(ctx context.Context, endpoint string, params map[string]string, out any) error {
	resp, err := ratelimit.Do(ctx, p.limiter, func(ctx context.Context) (*resty.Response, error) {
		return p.authedRequest(ctx).SetQueryParams(params).Get(endpoint)
	})
	return decodeResponse(endpoint, resp, err, out)
}

func (p *pinboardAdapter) authedRequest(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetQueryParam("format", "json").
		SetQueryParam("auth_token", p.token)
}
