package webfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "devassist-backend/lib/utils/app-errors"

	"github.com/stretchr/testify/require"
)

const testPage = `<html><head><title> Go   Blog </title><style>body{}</style></head>
<body><header>menu</header><nav>links</nav>
<h1>Release</h1><p>Go 1.23 is out.</p><script>alert(1)</script>
<ul><li>iterators</li><li>timers</li></ul><footer>copyright</footer></body></html>`

func TestExtractPage(t *testing.T) {
	page, err := ExtractPage(testPage)
	require.NoError(t, err)
	require.Equal(t, "Go Blog", page.Title)
	require.Contains(t, page.Text, "Release")
	require.Contains(t, page.Text, "Go 1.23 is out.")
	require.Contains(t, page.Text, "- iterators")
	require.NotContains(t, page.Text, "alert")
	require.NotContains(t, page.Text, "menu")
	require.NotContains(t, page.Text, "copyright")
	require.NotContains(t, page.Text, "body{}")
}

func TestFetch(t *testing.T) {
	t.Run(`html page check`, func(t *testing.T) {
		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.UserAgent()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(testPage))
		}))
		defer server.Close()

		page, err := NewFetcher("devassist-test", time.Second).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		require.Equal(t, "Go Blog", page.Title)
		require.Equal(t, "devassist-test", userAgent)
	})

	t.Run(`windows-1251 page check`, func(t *testing.T) {
		// "Привет" в cp1251
		greeting := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/meta" {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<html><head><meta charset="windows-1251"><title>t</title></head><body><p>`))
			} else {
				w.Header().Set("Content-Type", "text/html; charset=windows-1251")
				_, _ = w.Write([]byte(`<html><head><title>t</title></head><body><p>`))
			}
			_, _ = w.Write(greeting)
			_, _ = w.Write([]byte(`</p></body></html>`))
		}))
		defer server.Close()

		page, err := NewFetcher("ua", time.Second).Fetch(context.Background(), server.URL+"/header")
		require.NoError(t, err)
		require.Equal(t, "Привет", page.Text)

		page, err = NewFetcher("ua", time.Second).Fetch(context.Background(), server.URL+"/meta")
		require.NoError(t, err)
		require.Equal(t, "Привет", page.Text)
	})

	t.Run(`not found check`, func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()
		_, err := NewFetcher("ua", time.Second).Fetch(context.Background(), server.URL)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`timeout check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()
		_, err := NewFetcher("ua", 100*time.Millisecond).Fetch(context.Background(), server.URL)
		require.Equal(t, apperrors.KindUpstreamTimeout, apperrors.KindOf(err))
	})

	t.Run(`unreachable host check`, func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()
		_, err := NewFetcher("ua", time.Second).Fetch(context.Background(), url)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
