package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-autofill/internal/store"
	"github.com/jonathan/resume-autofill/internal/types"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv, err := New(Config{Store: st})
	require.NoError(t, err)
	return srv, st
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestProfileRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	profile := types.Profile{FullName: "Jane Doe", Email: "jane@example.com"}
	rec := doJSON(t, srv, http.MethodPut, "/profile", profile)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got types.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestPutProfileRejectsBadEmail(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/profile", types.Profile{Email: "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutProfileRejectsMalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"fullName":`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFillRequiresProfile(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/fill", FillRequest{
		HTML: `<form><input id="name"></form>`,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "No profile stored")
}

func TestFillRequiresExactlyOneInput(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.SaveProfile(context.Background(), &types.Profile{FullName: "Jane Doe"}))

	rec := doJSON(t, srv, http.MethodPost, "/fill", FillRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/fill", FillRequest{
		HTML: "<form></form>",
		URL:  "https://example.com/apply",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFillHTMLDocument(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.SaveProfile(context.Background(), &types.Profile{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}))

	rec := doJSON(t, srv, http.MethodPost, "/fill", FillRequest{
		HTML: `<html><body><form>
			<input id="name" type="text">
			<input id="email" type="email">
		</form></body></html>`,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.FilledCount)
	assert.Equal(t, types.MethodHeuristic, resp.Method)
	assert.Contains(t, resp.HTML, `value="Jane Doe"`)
	assert.Contains(t, resp.HTML, `value="jane@example.com"`)
}

func TestFillFromURL(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.SaveProfile(context.Background(), &types.Profile{Email: "jane@example.com"}))

	pageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><form><input id="email" type="email"></form></body></html>`))
	}))
	defer pageServer.Close()

	rec := doJSON(t, srv, http.MethodPost, "/fill", FillRequest{URL: pageServer.URL})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.FilledCount)
}

func TestFillUnreachableURL(t *testing.T) {
	srv, st := newTestServer(t)
	require.NoError(t, st.SaveProfile(context.Background(), &types.Profile{FullName: "Jane Doe"}))

	rec := doJSON(t, srv, http.MethodPost, "/fill", FillRequest{
		URL: "http://127.0.0.1:1/nope",
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAPIKeyLifecycle(t *testing.T) {
	srv, st := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/apikey", APIKeyRequest{APIKey: "sk-test-123"})
	require.Equal(t, http.StatusOK, rec.Code)

	key, err := st.LoadAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)

	rec = doJSON(t, srv, http.MethodDelete, "/apikey", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	key, err = st.LoadAPIKey(context.Background())
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestPutAPIKeyRequiresValue(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/apikey", APIKeyRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownMethodRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodDelete, "/profile", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflights(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/fill", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDAssignedAndEchoed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	echo := httptest.NewRecorder()
	srv.Handler().ServeHTTP(echo, req)
	assert.Equal(t, "caller-supplied", echo.Header().Get("X-Request-ID"))
}
