package unfurl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hacker-chat/config"
)

func newTestUnfurler() *HTTPUnfurler {
	cfg := &config.Config{}
	cfg.Unfurl.Timeout = 2 * time.Second
	cfg.Unfurl.MaxBodyBytes = 1 << 20
	return NewHTTPUnfurler(cfg)
}

func Test_FirstURL(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"check https://example.com/page out", "https://example.com/page"},
		{"http://a.example and https://b.example", "http://a.example"},
		{"no links here", ""},
		{"", ""},
		{"trailing punctuation https://example.com/x.", "https://example.com/x."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FirstURL(c.content), "content: %q", c.content)
	}
}

func Test_Unfurl(t *testing.T) {
	t.Run("opengraph tags preferred", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`<html><head>
				<title>Plain Title</title>
				<meta property="og:title" content="OG Title">
				<meta property="og:description" content="OG Description">
				<meta property="og:image" content="https://example.com/img.png">
			</head><body></body></html>`))
		}))
		defer srv.Close()

		preview := newTestUnfurler().Unfurl(t.Context(), srv.URL)
		assert.Equal(t, srv.URL, preview.URL)
		require.NotNil(t, preview.Title)
		assert.Equal(t, "OG Title", *preview.Title)
		require.NotNil(t, preview.Description)
		assert.Equal(t, "OG Description", *preview.Description)
		require.NotNil(t, preview.Image)
		assert.Equal(t, "https://example.com/img.png", *preview.Image)
	})

	t.Run("falls back to title and meta description", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`<html><head>
				<title>  Plain Title  </title>
				<meta name="description" content="Plain Description">
			</head><body></body></html>`))
		}))
		defer srv.Close()

		preview := newTestUnfurler().Unfurl(t.Context(), srv.URL)
		require.NotNil(t, preview.Title)
		assert.Equal(t, "Plain Title", *preview.Title)
		require.NotNil(t, preview.Description)
		assert.Equal(t, "Plain Description", *preview.Description)
		assert.Nil(t, preview.Image)
	})

	t.Run("http error yields null preview with url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		preview := newTestUnfurler().Unfurl(t.Context(), srv.URL)
		assert.Equal(t, srv.URL, preview.URL)
		assert.Nil(t, preview.Title)
		assert.Nil(t, preview.Description)
		assert.Nil(t, preview.Image)
	})

	t.Run("unreachable host yields null preview", func(t *testing.T) {
		preview := newTestUnfurler().Unfurl(t.Context(), "http://127.0.0.1:1")
		assert.Equal(t, "http://127.0.0.1:1", preview.URL)
		assert.Nil(t, preview.Title)
	})

	t.Run("garbage url yields null preview", func(t *testing.T) {
		preview := newTestUnfurler().Unfurl(t.Context(), "ht!tp://%%%")
		assert.Equal(t, "ht!tp://%%%", preview.URL)
		assert.Nil(t, preview.Title)
	})

	t.Run("non-html body yields null preview", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"not": "html"}`))
		}))
		defer srv.Close()

		preview := newTestUnfurler().Unfurl(t.Context(), srv.URL)
		assert.Nil(t, preview.Title)
		assert.Nil(t, preview.Description)
	})
}
