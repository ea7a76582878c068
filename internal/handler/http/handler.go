package http

import (
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"golang.org/x/time/rate"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 1 << 20

type Handler struct {
	services *service.Services

	// signer is nil unless HashSHA256 verification is configured.
	signer  *utils.BodySigner
	timeout time.Duration
	limiter *rateLimiterStore

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A zero rate limit in cfg disables
// per-user throttling.
func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}

	if cfg != nil {
		h.signer = utils.NewBodySigner(cfg.App.HashKey)
		h.timeout = cfg.Server.RequestTimeout
		if cfg.Server.RateLimit > 0 {
			h.limiter = newRateLimiterStore(rate.Limit(cfg.Server.RateLimit), max(cfg.Server.RateBurst, 1), clock.Real())
		}
	}

	logger.Info().
		Bool("hashing", h.signer.Enabled()).
		Bool("rate_limit", h.limiter != nil).
		Msg("http handler created")
	return h
}
