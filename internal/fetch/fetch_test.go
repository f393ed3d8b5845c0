package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><form><input name="name"></form></body></html>`))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, `name="name"`)
	assert.Contains(t, result.ContentType, "text/html")
	assert.False(t, result.Rendered)
}

func TestURLCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "nl", r.Header.Get("Accept-Language"))
	}))
	defer server.Close()

	opts := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "test-agent",
		Headers:   map[string]string{"Accept-Language": "nl"},
	}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
	// The body is still returned for diagnostics.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURLInvalid(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "relative/path"} {
		_, err := URL(context.Background(), bad, nil)
		assert.Error(t, err, "url %q", bad)
	}
}

func TestFormControlCount(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{
			name: "mixed controls",
			html: `<form><input name="name"><textarea></textarea><select><option>a</option></select></form>`,
			want: 3,
		},
		{
			name: "hidden and buttons excluded",
			html: `<form><input type="hidden" name="csrf"><input type="submit"><button>Go</button><input name="email"></form>`,
			want: 1,
		},
		{
			name: "empty shell page",
			html: `<html><body><div id="root"></div></body></html>`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormControlCount(tt.html))
		})
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(`<html><body><div id="root"></div></body></html>`))
	assert.False(t, ShouldUseBrowser(`<form><input name="name"></form>`))
}

func TestPageSkipsBrowserWhenFormPresent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><form><input name="email"></form></body></html>`))
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil, true, nil)
	require.NoError(t, err)
	assert.False(t, result.Rendered)
	assert.Contains(t, result.HTML, `name="email"`)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/en-US/careers", PlatformWorkday},
		{"https://careers.example.com/apply", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestPlatformFormSelectorAlwaysHasFallback(t *testing.T) {
	for _, platform := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformUnknown} {
		assert.Contains(t, PlatformFormSelector(platform), "form")
	}
}
