package testutil

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dom/job-board-website/internal/api"
	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/repository"
	"github.com/dom/job-board-website/internal/repository/localstore"
	"github.com/dom/job-board-website/internal/service"
	"github.com/dom/job-board-website/internal/ws"
)

// NewTestStore creates a store backed by a fresh temporary directory, so
// every test gets an isolated snapshot file.
func NewTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store := localstore.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func NewTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return localstore.NewRepositories(NewTestStore(t))
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0", // Random port
		Environment:        "test",
		DataDir:            "",
		SessionSecret:      "test-session-secret-key-for-testing-only",
		SessionTTL:         time.Hour,
		AllowReapplication: true,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *ws.Hub
	Config   *config.Config
}

// NewTestServer wires a full HTTP stack over a temp-dir store.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	repos := NewTestRepos(t)

	hub := ws.NewHub()
	go hub.Run()

	services := service.NewServices(repos, cfg, hub)
	router := api.NewRouter(services, hub, cfg)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Config:   cfg,
	}
}

// APIURL builds a full URL for an API path.
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api" + path
}

// WebSocketURL is the ws:// address of the live notification endpoint.
func (ts *TestServer) WebSocketURL() string {
	return "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/api/ws"
}
