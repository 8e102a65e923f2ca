//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordtrainer/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordtrainer/internal/app"
	authpkg "github.com/heartmarshall/wordtrainer/internal/auth"
	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/chat"
	"github.com/heartmarshall/wordtrainer/internal/service/quiz"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	token  string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a
// migrated SQLite file. Sessions keep the stored word order.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: "*"},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "e2e.db"),
		},
		Auth: config.AuthConfig{
			BridgeSecret: "test-secret-at-least-32-chars-long!!",
			Issuer:       "test-issuer",
			TokenTTL:     time.Hour,
		},
		Quiz: config.QuizConfig{
			DisableReaper:  true,
			StoreTimeout:   5 * time.Second,
			ReadAttempts:   2,
			RetryBaseDelay: 10 * time.Millisecond,
		},
		Chat: config.ChatConfig{Locale: config.LocaleRU, DisableRateLimit: true},
	}

	store, err := app.OpenStore(ctx, cfg.Database, logger)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	svc := app.NewServices(cfg, logger, store, translate.NewStub(nil),
		quiz.WithShuffle(func([]domain.WordPair) {}),
	)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.BridgeSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, err := jwtMgr.GenerateBridgeToken("e2e")
	require.NoError(t, err)

	handler, stop := app.NewRouter(cfg, logger, svc, store, jwtMgr)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), token: token}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func (ts *testServer) send(t *testing.T, userID int64, text string) chat.Reply {
	t.Helper()
	return ts.update(t, map[string]any{"user_id": userID, "text": text})
}

func (ts *testServer) press(t *testing.T, userID int64, data string) chat.Reply {
	t.Helper()
	return ts.update(t, map[string]any{"user_id": userID, "callback": data})
}

func (ts *testServer) update(t *testing.T, body map[string]any) chat.Reply {
	t.Helper()
	status, raw := ts.do(t, http.MethodPost, "/api/v1/updates", ts.token, body)
	require.Equal(t, http.StatusOK, status, string(raw))

	var reply chat.Reply
	require.NoError(t, json.Unmarshal(raw, &reply))
	return reply
}

func (ts *testServer) rating(t *testing.T, userID int64, dictionary string) (int, map[string]any) {
	t.Helper()
	path := fmt.Sprintf("/api/v1/users/%d/ratings?dictionary=%s", userID, dictionary)
	status, raw := ts.do(t, http.MethodGet, path, ts.token, nil)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return status, out
}

// callbacks flattens the reply keyboard into its callback data.
func callbacks(r chat.Reply) []string {
	var out []string
	for _, row := range r.Keyboard {
		for _, b := range row {
			out = append(out, b.Data)
		}
	}
	return out
}

// createDictionary drives the create flow and adds the given words.
func createDictionary(t *testing.T, ts *testServer, userID int64, name string, words map[string]string, order []string) {
	t.Helper()

	ts.send(t, userID, "/start")
	ts.press(t, userID, "create_dict")
	r := ts.send(t, userID, name)
	require.Contains(t, r.Text, name)

	for _, term := range order {
		ts.press(t, userID, "add:"+name)
		ts.send(t, userID, term)
		r = ts.send(t, userID, words[term])
		require.Contains(t, r.Text, term)
	}
}
