package imagegenhandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	filestorage "devassist-backend/lib/file-storage"
	sdclient "devassist-backend/lib/imagegen/sd-client"
	apperrors "devassist-backend/lib/utils/app-errors"
	imagegenapimodels "devassist-backend/models/api/imagegen"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, baseURL string) (impl, filestorage.Provider) {
	storage, err := filestorage.NewLocal(t.TempDir(), "/files")
	require.NoError(t, err)
	return impl{
		client:   sdclient.NewClient(baseURL, time.Second),
		storage:  storage,
		defaults: Defaults{Width: 512, Height: 512, Steps: 20},
	}, storage
}

func TestGenerate(t *testing.T) {
	t.Run(`generated mode check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/sdapi/v1/txt2img", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			require.Contains(t, string(body), `"width":512`)
			_, _ = w.Write([]byte(`{"images":["aW1n"]}`))
		}))
		defer server.Close()

		handler, _ := newTestHandler(t, server.URL)
		resp, err := handler.Generate(context.Background(), imagegenapimodels.GenerateRequest{Prompt: "a cat"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, imagegenapimodels.ModeGenerated, resp.Mode)
		data := resp.Data.(imagegenapimodels.GeneratedData)
		require.Equal(t, "aW1n", data.Image)
		require.Equal(t, 512, data.Width)
	})

	t.Run(`unreachable backend placeholder check`, func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		handler, storage := newTestHandler(t, url)
		resp, err := handler.Generate(context.Background(), imagegenapimodels.GenerateRequest{Prompt: "a <cat>"})
		require.NoError(t, err)
		require.Equal(t, imagegenapimodels.ModePlaceholder, resp.Mode)
		data := resp.Data.(imagegenapimodels.PlaceholderData)
		require.True(t, strings.HasPrefix(data.ImageURL, "/files/images/"))
		require.True(t, strings.HasSuffix(data.ImageURL, ".svg"))

		reader, err := storage.Get(context.Background(), strings.TrimPrefix(data.ImageURL, "/files/"))
		require.NoError(t, err)
		svg, _ := io.ReadAll(reader)
		reader.Close()
		require.Contains(t, string(svg), "a &lt;cat&gt;")
	})

	t.Run(`not configured placeholder check`, func(t *testing.T) {
		handler, _ := newTestHandler(t, "")
		resp, err := handler.Generate(context.Background(), imagegenapimodels.GenerateRequest{Prompt: "x"})
		require.NoError(t, err)
		require.Equal(t, imagegenapimodels.ModePlaceholder, resp.Mode)
	})

	t.Run(`backend error check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		handler, _ := newTestHandler(t, server.URL)
		_, err := handler.Generate(context.Background(), imagegenapimodels.GenerateRequest{Prompt: "x"})
		require.Equal(t, apperrors.KindUpstreamError, apperrors.KindOf(err))
	})
}
