package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки middleware логирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// MaxBodyLen ограничивает длину тела запроса/ответа в логе, 0 - значение по умолчанию
	MaxBodyLen int
	// SkipPaths запросы по этим путям не логируются (health-проверки)
	SkipPaths []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
	MaxBodyLen: defaultMaxBodyLen,
}
