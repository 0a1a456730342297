package initializers

import (
	"context"

	"devassist-backend/config"
	filestorage "devassist-backend/lib/file-storage"
	s3client "devassist-backend/s3"

	log "github.com/sirupsen/logrus"
)

const localFilesURLPrefix = "/files"

// InitStorage выбирает S3, если задан endpoint, иначе локальный каталог
func InitStorage(ctx context.Context) {
	if config.Conf.S3.Endpoint != "" {
		client, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
			config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
		if err != nil {
			log.WithError(err).Error("Ошибка инициализации клиента S3")
		} else if err = s3client.MakeBucket(ctx, client, config.Conf.S3.BucketName); err != nil {
			log.WithError(err).Error("S3 соединение не удалось, используется локальное хранилище")
		} else {
			filestorage.Instance = filestorage.NewS3(client, config.Conf.S3.BucketName)
			log.Info("S3 клиент успешно инициализирован")
			return
		}
	}
	storage, err := filestorage.NewLocal(config.Conf.Storage.LocalDir, localFilesURLPrefix)
	if err != nil {
		panic(err.Error())
	}
	filestorage.Instance = storage
	log.WithField("dir", config.Conf.Storage.LocalDir).Info("используется локальное файловое хранилище")
}
