package documentstore

import (
	"context"
	"time"

	filestorage "devassist-backend/lib/file-storage"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

type Document struct {
	ID               string
	OriginalFilename string
	ContentType      string
	StorageKey       string
	Content          string
	UploadedAt       time.Time
}

type Provider interface {
	Put(doc Document)
	Get(id string) (Document, bool)
	Delete(id string) bool
	Count() int
}

type impl struct {
	cache *cache.Cache
}

// NewInstance хранит документы ttl времени, при вытеснении удаляет исходный файл из storage
func NewInstance(ttl, cleanupInterval time.Duration, storage filestorage.Provider) Provider {
	c := cache.New(ttl, cleanupInterval)
	if storage != nil {
		c.OnEvicted(func(id string, value interface{}) {
			doc, ok := value.(Document)
			if !ok || doc.StorageKey == "" {
				return
			}
			if err := storage.Delete(context.Background(), doc.StorageKey); err != nil {
				log.
					WithField("document_id", id).
					WithField("key", doc.StorageKey).
					WithError(err).
					Warn("ошибка удаления файла документа")
			}
		})
	}
	return impl{cache: c}
}

func (i impl) Put(doc Document) {
	i.cache.SetDefault(doc.ID, doc)
}

func (i impl) Get(id string) (Document, bool) {
	value, ok := i.cache.Get(id)
	if !ok {
		return Document{}, false
	}
	doc, ok := value.(Document)
	return doc, ok
}

func (i impl) Delete(id string) bool {
	if _, ok := i.cache.Get(id); !ok {
		return false
	}
	i.cache.Delete(id)
	return true
}

func (i impl) Count() int {
	return i.cache.ItemCount()
}
