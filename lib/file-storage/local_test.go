package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocal(dir, "/files/")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run(`save get delete check`, func(t *testing.T) {
		key, err := storage.Save(ctx, MakeKey(DocumentsPrefix, "a.txt"), strings.NewReader("hello"), 5, "text/plain")
		require.NoError(t, err)
		require.Equal(t, "documents/a.txt", key)
		require.FileExists(t, filepath.Join(dir, "documents", "a.txt"))

		reader, err := storage.Get(ctx, key)
		require.NoError(t, err)
		data, err := io.ReadAll(reader)
		reader.Close()
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))

		require.NoError(t, storage.Delete(ctx, key))
		_, err = os.Stat(filepath.Join(dir, "documents", "a.txt"))
		require.True(t, os.IsNotExist(err))
		require.NoError(t, storage.Delete(ctx, key))
	})

	t.Run(`key cannot escape root check`, func(t *testing.T) {
		require.Equal(t, "images/passwd", MakeKey(ImagesPrefix, "../../etc/passwd"))
		key, err := storage.Save(ctx, "../outside.txt", strings.NewReader("x"), 1, "")
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "outside.txt"))
		require.NoError(t, storage.Delete(ctx, key))
	})

	t.Run(`url check`, func(t *testing.T) {
		url, err := storage.URL(ctx, "images/x.svg")
		require.NoError(t, err)
		require.Equal(t, "/files/images/x.svg", url)
	})
}
