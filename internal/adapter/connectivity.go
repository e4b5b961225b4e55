package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
)

// DefaultProbeTimeout bounds a single connectivity probe.
const DefaultProbeTimeout = 5 * time.Second

type httpConnectivityChecker struct {
	client   *utils.HTTPClient
	probeURL string
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	checkedAt time.Time
	connected bool

	logger *logger.Logger
}

// NewConnectivityChecker returns a [ConnectivityChecker] that sends a HEAD
// request to probeURL. Any HTTP response, whatever its status, counts as
// connected. The answer is reused for ttl.
func NewConnectivityChecker(probeURL string, ttl time.Duration, logger *logger.Logger) (ConnectivityChecker, error) {
	normalized, err := normalizeBaseURL(probeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid connectivity probe address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(DefaultProbeTimeout)

	return &httpConnectivityChecker{
		client:   client,
		probeURL: normalized,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (c *httpConnectivityChecker) IsConnected(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checkedAt.IsZero() && c.now().Sub(c.checkedAt) < c.ttl {
		return c.connected
	}

	_, err := c.client.R().SetContext(ctx).Head(c.probeURL)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("func", "httpConnectivityChecker.IsConnected").
			Str("probe", c.probeURL).
			Msg("remote unreachable")
	}

	// a cancelled caller says nothing about the network
	if ctx.Err() != nil {
		return err == nil
	}

	c.connected = err == nil
	c.checkedAt = c.now()
	return c.connected
}

// AlwaysOffline is the [ConnectivityChecker] of local-only deployments.
type AlwaysOffline struct{}

func (AlwaysOffline) IsConnected(context.Context) bool {
	return false
}
