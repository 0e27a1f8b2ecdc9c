package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenahq/arena/internal/api"
	"github.com/arenahq/arena/internal/factory"
	"github.com/arenahq/arena/internal/services/auth"
	"github.com/arenahq/arena/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "arenactl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/arenactl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application with zero simulated latency so tests stay fast
	authCfg := auth.DefaultConfig()
	authCfg.LoginLatency = 0
	authCfg.SignupLatency = 0

	app, err := factory.New(factory.Config{AuthConfig: authCfg})
	require.NoError(t, err)
	require.NoError(t, app.SeedDemoData(context.Background()))

	logger := testutil.NopLogger()
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		AuthService:       app.AuthService,
		DirectoryService:  app.DirectoryService,
		GameService:       app.GameService,
		TournamentService: app.TournamentService,
		HubManager:        app.HubManager,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Session struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Role     string `json:"role"`
		} `json:"user"`
	} `json:"session"`
	RedirectTo string `json:"redirectTo"`
}

type gameResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type tournamentResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	MaxTeams        int    `json:"maxTeams"`
	RegisteredTeams int    `json:"registeredTeams"`
}

type matchResponse struct {
	ID     string `json:"id"`
	TeamA  string `json:"teamA"`
	TeamB  string `json:"teamB"`
	ScoreA int    `json:"scoreA"`
	ScoreB int    `json:"scoreB"`
	Status string `json:"status"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Sign in as the demo player
	output, err := cli.run("auth", "login",
		"--email", "player@example.com", "--password", "player123", "--role", "player")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "player", authResp.Session.User.Username)
	assert.Equal(t, "/player/dashboard", authResp.RedirectTo)
	assert.NotEmpty(t, authResp.Session.Token)

	// Me (token should be saved in token file)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var session struct {
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &session))
	assert.Equal(t, authResp.Session.User.ID, session.User.ID)

	// Logout clears the saved token
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Signed out")
}

func TestCLI_SignupFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "signup",
		"--username", "e2euser", "--email", "e2e@example.com", "--password", "secret123", "--role", "spectator")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "e2euser", authResp.Session.User.Username)
	assert.Equal(t, "/tournaments", authResp.RedirectTo)
}

func TestCLI_TournamentFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Sign in as the demo organizer
	output, err := cli.run("auth", "login",
		"--email", "organizer@example.com", "--password", "organizer123", "--role", "organizer")
	require.NoError(t, err, "output: %s", output)
	var organizer authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &organizer))
	token := organizer.Session.Token

	// Pick a game from the seeded catalog
	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var games []gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.NotEmpty(t, games)

	// Create a tournament
	output, err = cli.runWithToken(token, "tournament", "create",
		"--name", "E2E Cup", "--game", games[0].ID, "--max-teams", "4", "--region", "EU West")
	require.NoError(t, err, "output: %s", output)
	var created tournamentResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "upcoming", created.Status)

	// Schedule and score a match
	output, err = cli.runWithToken(token, "tournament", "schedule", created.ID,
		"--team-a", "Team Alpha", "--team-b", "Team Bravo")
	require.NoError(t, err, "output: %s", output)
	var match matchResponse
	require.NoError(t, json.Unmarshal([]byte(output), &match))

	output, err = cli.runWithToken(token, "tournament", "score", match.ID,
		"--a", "2", "--b", "0", "--status", "completed")
	require.NoError(t, err, "output: %s", output)
	var scored matchResponse
	require.NoError(t, json.Unmarshal([]byte(output), &scored))
	assert.Equal(t, 2, scored.ScoreA)
	assert.Equal(t, "completed", scored.Status)

	// Matches listing reflects the result
	output, err = cli.run("tournament", "matches", created.ID)
	require.NoError(t, err, "output: %s", output)
	var matches []matchResponse
	require.NoError(t, json.Unmarshal([]byte(output), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "completed", matches[0].Status)
}

func TestCLI_UserAdministration(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "login",
		"--email", "admin@example.com", "--password", "admin123", "--role", "administrator")
	require.NoError(t, err, "output: %s", output)
	var admin authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &admin))

	output, err = cli.runWithToken(admin.Session.Token, "user", "list")
	require.NoError(t, err, "output: %s", output)

	var users []struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &users))
	assert.Len(t, users, 4)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Right credentials, wrong claimed role
	output, err := cli.run("auth", "login",
		"--email", "player@example.com", "--password", "player123", "--role", "administrator")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_CREDENTIALS")

	// Unknown tournament
	output, err = cli.run("tournament", "get", "missing")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// A role-denied write surfaces the denial instead of exiting clean
	output, err = cli.run("auth", "login",
		"--email", "organizer@example.com", "--password", "organizer123", "--role", "organizer")
	require.NoError(t, err, output)
	output, err = cli.run("game", "create", "--name", "Smash", "--genre", "Fighting")
	assert.Error(t, err)
	assert.Contains(t, output, "FORBIDDEN")
}
