package initializers

import (
	"devassist-backend/fiberlog"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger настраивает глобальный логгер и возвращает конфиг логирования запросов /api
func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	log.SetLevel(log.InfoLevel)

	requestLogger := log.New()
	requestLogger.SetFormatter(jsonFormatter())
	requestLogger.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagRoute,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagBody,
			fiberlog.TagBytesSent,
			fiberlog.RequestID,
		},
		MaxBodyLen: 1024,
		// health опрашивается фронтендом постоянно
		SkipPaths: []string{"/api/health"},
	}
}
