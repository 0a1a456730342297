package filestorage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type localImpl struct {
	rootDir   string
	urlPrefix string
}

// NewLocal хранит объекты в rootDir, URL возвращает urlPrefix + key
func NewLocal(rootDir, urlPrefix string) (Provider, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "ошибка создания каталога хранилища")
	}
	return &localImpl{
		rootDir:   rootDir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

func (i localImpl) filePath(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", errors.New("пустой ключ файла")
	}
	return filepath.Join(i.rootDir, filepath.FromSlash(clean)), nil
}

func (i localImpl) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	filePath, err := i.filePath(key)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", errors.Wrap(err, "ошибка создания каталога")
	}
	file, err := os.Create(filePath)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания файла")
	}
	defer file.Close()
	if _, err = io.Copy(file, reader); err != nil {
		os.Remove(filePath)
		return "", errors.Wrap(err, "ошибка записи файла")
	}
	return key, nil
}

func (i localImpl) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	filePath, err := i.filePath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(filePath)
}

func (i localImpl) Delete(ctx context.Context, key string) error {
	filePath, err := i.filePath(key)
	if err != nil {
		return err
	}
	err = os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (i localImpl) URL(ctx context.Context, key string) (string, error) {
	return i.urlPrefix + "/" + strings.TrimLeft(key, "/"), nil
}
