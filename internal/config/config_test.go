package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite defines the test suite for configuration loading
type ConfigTestSuite struct {
	suite.Suite
}

// TestConfigTestSuite runs the test suite
func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("8080", cfg.Server.Port)
	s.Equal("http://localhost:9090", cfg.Upstream.BaseURL)
	s.Equal("/getAuthorize", cfg.Upstream.AuthorizePath)
	s.Equal("/sales", cfg.Upstream.SalesPath)
	s.True(cfg.Upstream.Enabled)
	s.Equal("demo-token", cfg.Upstream.FallbackToken)
	s.Equal(FailurePolicyDegrade, cfg.Upstream.FailurePolicy)
	s.Equal(60*time.Second, cfg.Cache.TTL)
	s.Equal(10*time.Minute, cfg.Cache.Retention)
	s.Equal(600*time.Millisecond, cfg.Generator.Latency)
}

func (s *ConfigTestSuite) TestLoad_EnvironmentOverrides() {
	s.T().Setenv("SALES_API_ENABLED", "false")
	s.T().Setenv("SALES_API_FAILURE_POLICY", FailurePolicyStrict)
	s.T().Setenv("QUERY_CACHE_TTL", "30s")

	cfg, err := Load()
	s.Require().NoError(err)

	s.False(cfg.Upstream.Enabled)
	s.Equal(FailurePolicyStrict, cfg.Upstream.FailurePolicy)
	s.Equal(30*time.Second, cfg.Cache.TTL)
}

func (s *ConfigTestSuite) TestLoad_RejectsUnknownFailurePolicy() {
	s.T().Setenv("SALES_API_FAILURE_POLICY", "retry")

	_, err := Load()
	s.Error(err)
	s.Contains(err.Error(), "SALES_API_FAILURE_POLICY")
}

func (s *ConfigTestSuite) TestLoad_RejectsRetentionShorterThanTTL() {
	s.T().Setenv("QUERY_CACHE_TTL", "10m")
	s.T().Setenv("QUERY_CACHE_RETENTION", "1m")

	_, err := Load()
	s.Error(err)
	s.Contains(err.Error(), "QUERY_CACHE_RETENTION")
}

func (s *ConfigTestSuite) TestLoad_IgnoresMalformedOptionalValues() {
	s.T().Setenv("RATE_LIMIT_PER_SECOND", "lots")
	s.T().Setenv("GENERATOR_LATENCY", "soon")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(20, cfg.Server.RateLimitPerSecond)
	s.Equal(600*time.Millisecond, cfg.Generator.Latency)
}

func (s *ConfigTestSuite) TestEnvironmentHelpers() {
	cfg, err := Load()
	s.Require().NoError(err)
	s.True(cfg.IsDevelopment())
	s.False(cfg.IsProduction())
}
