package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagIP        = "ip"
	TagMethod    = "method"
	TagPath      = "path"
	TagRoute     = "route"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagUA        = "ua"
	TagBody      = "body"
	TagResBody   = "resBody"
	TagBytesSent = "bytesSent"
	TagError     = "error"
	RequestID    = "requestId"
)

const defaultMaxBodyLen = 2048

// FuncTag returns the value logged under a tag
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagRoute: func(c *fiber.Ctx, d *data) interface{} {
			return c.Route().Path
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			if !isTextual(string(c.Request().Header.ContentType())) {
				return ""
			}
			return truncate(string(c.Body()), cfg.MaxBodyLen)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			if !isTextual(string(c.Response().Header.ContentType())) {
				return ""
			}
			return truncate(string(c.Response().Body()), cfg.MaxBodyLen)
		},
		TagBytesSent: func(c *fiber.Ctx, d *data) interface{} {
			return len(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// multipart и бинарные тела не пишем в лог
func isTextual(contentType string) bool {
	return strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) || strings.HasPrefix(contentType, "text/")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		limit = defaultMaxBodyLen
	}
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
