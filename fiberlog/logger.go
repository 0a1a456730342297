package fiberlog

import (
	"os"
	"time"

	"devassist-backend/lib/utils/helpers"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg, &data{})
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions || c.Get(helpers.HeaderLogIgnore) != "" {
			return err
		}
		if _, ok := skip[c.Path()]; ok {
			return err
		}

		fields := getLogrusFields(ftm, c, d)
		if err != nil {
			fields[TagError] = err.Error()
		}
		entity := logger.WithFields(fields)
		if c.Response().StatusCode() >= 300 || err != nil {
			entity.Warn(getMessage(c))
		} else {
			entity.Info(getMessage(c))
		}
		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return "запрос api"
}
