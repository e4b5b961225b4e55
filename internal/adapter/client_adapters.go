package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

// ClientAdapters groups the remotes of the client. A backend whose base URL
// is not configured is left nil.
type ClientAdapters struct {
	Pinboard             PinboardAdapter
	PinboardConnectivity ConnectivityChecker

	Linkding             LinkdingAdapter
	LinkdingConnectivity ConnectivityChecker
}

// NewClientAdapters builds an adapter and a connectivity probe for every
// configured backend. The probe targets cfg.ConnectivityURL when set and
// the backend base URL otherwise.
func NewClientAdapters(cfg config.ClientAdapter, logger *logger.Logger) (*ClientAdapters, error) {
	adapters := &ClientAdapters{}

	if strings.TrimSpace(cfg.Pinboard.BaseURL) != "" {
		pinboard, err := NewPinboardAdapter(cfg, logger.WithComponent("pinboard"))
		if err != nil {
			return nil, err
		}
		probe, err := NewConnectivityChecker(probeURL(cfg, cfg.Pinboard.BaseURL), cfg.ConnectivityTTL, logger)
		if err != nil {
			return nil, fmt.Errorf("pinboard connectivity: %w", err)
		}
		adapters.Pinboard, adapters.PinboardConnectivity = pinboard, probe
	}

	if strings.TrimSpace(cfg.Linkding.BaseURL) != "" {
		linkding, err := NewLinkdingAdapter(cfg, logger.WithComponent("linkding"))
		if err != nil {
			return nil, err
		}
		probe, err := NewConnectivityChecker(probeURL(cfg, cfg.Linkding.BaseURL), cfg.ConnectivityTTL, logger)
		if err != nil {
			return nil, fmt.Errorf("linkding connectivity: %w", err)
		}
		adapters.Linkding, adapters.LinkdingConnectivity = linkding, probe
	}

	return adapters, nil
}

func probeURL(cfg config.ClientAdapter, baseURL string) string {
	if strings.TrimSpace(cfg.ConnectivityURL) != "" {
		return cfg.ConnectivityURL
	}
	return baseURL
}
