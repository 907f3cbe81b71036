package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/studykeeper/internal/client/models"
	"github.com/dmitrijs2005/studykeeper/internal/logging"
	"github.com/dmitrijs2005/studykeeper/internal/netx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://script.example.test/exec"

// recordingPoster is a Poster that records every call and returns a canned answer.
type recordingPoster struct {
	mu sync.Mutex

	Reply string
	Err   error

	Calls     int
	Endpoints []string
	Bodies    [][]byte
}

func (p *recordingPoster) Post(_ context.Context, endpoint string, body []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls++
	p.Endpoints = append(p.Endpoints, endpoint)
	p.Bodies = append(p.Bodies, append([]byte(nil), body...))
	return p.Reply, p.Err
}

func (p *recordingPoster) lastBody(t *testing.T) map[string]any {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.Bodies, "no request was sent")
	var m map[string]any
	require.NoError(t, json.Unmarshal(p.Bodies[len(p.Bodies)-1], &m))
	return m
}

func newTestClient(t *testing.T, p Poster) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(testEndpoint, p, nil)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_Validation(t *testing.T) {
	_, err := NewHTTPClient("", &recordingPoster{}, nil)
	require.ErrorIs(t, err, ErrNoEndpoint)

	_, err = NewHTTPClient(testEndpoint, nil, nil)
	require.Error(t, err)
}

func TestHTTPClient_Envelopes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		reply string
		call  func(c *HTTPClient) (any, error)
		want  map[string]any
	}{
		{
			name:  "register",
			reply: `{"ok":true,"usuario_id":"u1"}`,
			call:  func(c *HTTPClient) (any, error) { return c.Register(ctx, "alice", "h") },
			want:  map[string]any{"action": "register", "username": "alice", "password_hash": "h"},
		},
		{
			name:  "login",
			reply: `{"ok":true,"usuario_id":"u1"}`,
			call:  func(c *HTTPClient) (any, error) { return c.Login(ctx, "alice", "h") },
			want:  map[string]any{"action": "login", "username": "alice", "password_hash": "h"},
		},
		{
			name:  "list_materias",
			reply: `{"ok":true,"materias":[]}`,
			call:  func(c *HTTPClient) (any, error) { return c.ListCourses(ctx) },
			want:  map[string]any{"action": "list_materias"},
		},
		{
			name:  "load_progress",
			reply: `{"ok":true,"progreso":{}}`,
			call:  func(c *HTTPClient) (any, error) { return c.LoadProgress(ctx, "u1") },
			want:  map[string]any{"action": "load_progress", "usuario_id": "u1"},
		},
		{
			name:  "save_progress",
			reply: `{"ok":true}`,
			call: func(c *HTTPClient) (any, error) {
				return c.SaveProgress(ctx, "u1", json.RawMessage(`{"m1":[true,false]}`))
			},
			want: map[string]any{
				"action":     "save_progress",
				"usuario_id": "u1",
				"progreso":   map[string]any{"m1": []any{true, false}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPoster{Reply: tt.reply}
			res, err := tt.call(newTestClient(t, p))
			require.NoError(t, err)
			require.NotNil(t, res)

			require.Equal(t, 1, p.Calls)
			assert.Equal(t, testEndpoint, p.Endpoints[0])
			assert.Equal(t, tt.want, p.lastBody(t))
		})
	}
}

func TestHTTPClient_NonJSONNeverRejects(t *testing.T) {
	ctx := context.Background()
	p := &recordingPoster{Reply: "not json"}
	c := newTestClient(t, p)

	want := models.Status{OK: false, Error: models.ErrMsgNonJSON, Raw: "not json"}

	ar, err := c.Register(ctx, "alice", "h")
	require.NoError(t, err)
	assert.Equal(t, want, ar.Status)

	lr, err := c.Login(ctx, "alice", "h")
	require.NoError(t, err)
	assert.Equal(t, want, lr.Status)

	cr, err := c.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, cr.Status)

	pr, err := c.LoadProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, pr.Status)

	sr, err := c.SaveProgress(ctx, "u1", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, want, sr.Status)

	assert.Equal(t, 5, p.Calls)
}

func TestHTTPClient_RemoteFailurePassesThrough(t *testing.T) {
	p := &recordingPoster{Reply: `{"ok":false,"error":"Contraseña incorrecta"}`}
	res, err := newTestClient(t, p).Login(context.Background(), "alice", "h")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "Contraseña incorrecta", res.Error)
	assert.Empty(t, res.Raw)
}

func TestHTTPClient_TransportErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	p := &recordingPoster{Err: boom}
	c := newTestClient(t, p)

	_, err := c.Login(context.Background(), "alice", "h")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "login request")

	_, err = c.ListCourses(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestHTTPClient_SaveProgress_InvalidPayloadIsNotSent(t *testing.T) {
	p := &recordingPoster{Reply: `{"ok":true}`}
	_, err := newTestClient(t, p).SaveProgress(context.Background(), "u1", json.RawMessage(`{broken`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode save_progress request")
	assert.Equal(t, 0, p.Calls)
}

func TestHTTPClient_LogsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelDebug)

	p := &recordingPoster{Reply: `{"ok":true,"usuario_id":"u1"}`}
	c, err := NewHTTPClient(testEndpoint, p, log)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice", "deadbeefdigest")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "action=login")
	assert.Contains(t, out, "request_id=")
	assert.NotContains(t, out, "deadbeefdigest")
}

func TestHTTPClient_ConcurrentCalls(t *testing.T) {
	p := &recordingPoster{Reply: `{"ok":true,"progreso":[]}`}
	c := newTestClient(t, p)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			res, err := c.LoadProgress(context.Background(), "u1")
			assert.NoError(t, err)
			assert.True(t, res.OK)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, p.Calls)
}

func TestHTTPClient_WithTextPoster(t *testing.T) {
	var gotCT string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"ok":true,"materias":[{"id":"m1","nombre":"Álgebra"}]}`))
	}))
	defer ts.Close()

	c, err := NewHTTPClient(ts.URL, netx.NewTextPoster(ts.Client()), nil)
	require.NoError(t, err)

	res, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Len(t, res.Courses, 1)
	assert.Equal(t, "Álgebra", res.Courses[0].Title())

	assert.Equal(t, netx.ContentTypeText, gotCT)
	assert.JSONEq(t, `{"action":"list_materias"}`, string(gotBody))
}
