package filestorage

import (
	"context"
	"io"
	"path"
	"strings"
)

// префиксы ключей в хранилище
const (
	DocumentsPrefix = "documents"
	ImagesPrefix    = "images"
)

type Provider interface {
	// Save сохраняет объект по ключу и возвращает ключ
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL адрес, по которому браузер загрузит объект
	URL(ctx context.Context, key string) (string, error)
}

var Instance Provider

// MakeKey склеивает префикс и имя, каталоги из имени отбрасываются
func MakeKey(prefix, name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return path.Join(prefix, name)
}
