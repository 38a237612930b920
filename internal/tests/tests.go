package tests

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/services"
)

const (
	TestToken    = "test-token"
	TestUser     = "test-user"
	TestPassword = "test-password"

	// StartGame is the starting position with black to move.
	StartGame = "00000010080000000000000810000000-b"
)

// TestConfig returns a server config with small search limits.
func TestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: TestUser,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
		Prefork:           false,
		Search: config.SearchConfig{
			DefaultDepth: 1,
			MaxDepth:     4,
			CacheTTL:     time.Minute,
		},
	}
}

// NewApp builds the app with the test config. A nil services value means
// no Postgres and no Redis.
func NewApp(s *services.Services) *fiber.App {
	if s == nil {
		s = &services.Services{}
	}
	return internal.BuildApp(TestConfig(), s)
}

// WithToken adds the token header to a request.
func WithToken(req *http.Request) *http.Request {
	req.Header.Set(middleware.TokenHeader, TestToken)
	return req
}

// WithBasicAuth adds basic auth credentials to a request.
func WithBasicAuth(req *http.Request, user, password string) *http.Request {
	credentials := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	req.Header.Set("Authorization", "Basic "+credentials)
	return req
}
