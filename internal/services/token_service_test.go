package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"salesboard/internal/config"

	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TokenServiceTestSuite) newService(baseURL string) TokenProviderInterface {
	cfg := &config.UpstreamConfig{
		BaseURL:       baseURL,
		AuthorizePath: "/getAuthorize",
		Timeout:       2 * time.Second,
		FallbackToken: "fallback-token",
	}
	return NewTokenService(cfg, newTestLogger(), NewNoopMetrics())
}

func (s *TokenServiceTestSuite) TestAcquire_UsesTokenField() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/getAuthorize", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"issued-token"}`))
	}))
	defer server.Close()

	token := s.newService(server.URL).Acquire(s.ctx)
	s.Equal("issued-token", token)
}

func (s *TokenServiceTestSuite) TestAcquire_UsesKeyField() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"key":"issued-key"}`))
	}))
	defer server.Close()

	token := s.newService(server.URL).Acquire(s.ctx)
	s.Equal("issued-key", token)
}

func (s *TokenServiceTestSuite) TestAcquire_FallsBackOnErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	token := s.newService(server.URL).Acquire(s.ctx)
	s.Equal("fallback-token", token)
}

func (s *TokenServiceTestSuite) TestAcquire_FallsBackOnNetworkError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	token := s.newService(server.URL).Acquire(s.ctx)
	s.Equal("fallback-token", token)
}

func (s *TokenServiceTestSuite) TestAcquire_FallsBackOnEmptyPayload() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	token := s.newService(server.URL).Acquire(s.ctx)
	s.Equal("fallback-token", token)
}

func (s *TokenServiceTestSuite) TestAcquire_SingleAttemptOnly() {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := s.newService(server.URL)
	s.Equal("fallback-token", service.Acquire(s.ctx))
	s.Equal("fallback-token", service.Acquire(s.ctx))

	s.Equal(int64(1), calls.Load(), "Failed acquisition should not be retried")
}

func (s *TokenServiceTestSuite) TestAcquire_CachesSuccessfulToken() {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"issued-token"}`))
	}))
	defer server.Close()

	service := s.newService(server.URL)
	s.Equal("issued-token", service.Acquire(s.ctx))
	s.Equal("issued-token", service.Acquire(s.ctx))

	s.Equal(int64(1), calls.Load(), "Token should be acquired once per process")
}
