package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"salesboard/internal/config"
	"salesboard/internal/dto"
)

// TokenService acquires the bearer token required for sales queries.
// Acquisition is a single attempt with a fixed fallback: any transport
// failure or non-success status yields the configured fallback token
// instead of an error. The result is cached for the process lifetime.
type TokenService struct {
	cfg     *config.UpstreamConfig
	client  *http.Client
	logger  *slog.Logger
	metrics MetricsRecorderInterface

	mu    sync.Mutex
	token string
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.UpstreamConfig, logger *slog.Logger, metrics MetricsRecorderInterface) TokenProviderInterface {
	return &TokenService{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Acquire returns the session token, requesting one from the upstream
// authorize endpoint on first use
func (s *TokenService) Acquire(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token
	}

	start := time.Now()
	token, ok := s.requestToken(ctx)
	s.metrics.RecordProcessingTime("token.acquisition", time.Since(start))

	if !ok {
		s.metrics.IncrementCounter("token.acquired", map[string]string{"outcome": "fallback"})
		token = s.cfg.FallbackToken
	} else {
		s.metrics.IncrementCounter("token.acquired", map[string]string{"outcome": "upstream"})
	}

	s.token = token
	return s.token
}

// requestToken performs the single acquisition attempt
func (s *TokenService) requestToken(ctx context.Context) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+s.cfg.AuthorizePath, nil)
	if err != nil {
		s.logger.Warn("authorize request could not be built, using fallback token", "error", err)
		return "", false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("authorize request failed, using fallback token", "error", err)
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		s.logger.Warn("authorize response unreadable, using fallback token", "error", err)
		return "", false
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Warn("authorize returned non-success status, using fallback token",
			"status", resp.StatusCode,
		)
		return "", false
	}

	var authorized dto.AuthorizeResponse
	if err := json.Unmarshal(body, &authorized); err != nil {
		s.logger.Warn("authorize response undecodable, using fallback token", "error", err)
		return "", false
	}

	token := authorized.BearerToken()
	if token == "" {
		s.logger.Warn("authorize response carried no token, using fallback token")
		return "", false
	}

	s.logger.Info("authorization token acquired")
	return token, true
}
