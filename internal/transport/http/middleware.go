package httpt

import (
	"net/http"
	"time"

	"freightqa/internal/shacl"
	"freightqa/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const (
	_requestIDHeader = "X-Request-ID"
	_languageKey     = "language"
)

func (h *Handler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(_requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = h.log.GenerateRequestID()
		}

		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(_requestIDHeader, requestID)

		c.Next()
	}
}

func (h *Handler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method

		// Route template keeps metric label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.Ctx(c.Request.Context()).LogRequest(c.Request.Context(), method, c.Request.URL.Path, statusCode, latency)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > _slowRequestThreshold {
			h.log.LogAttrs(c.Request.Context(), logger.WarnLevel, "slow HTTP request",
				logger.String("method", method),
				logger.String("path", path),
				logger.Duration("duration", latency),
			)
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

// languageMiddleware picks the message language from the lang query
// parameter, then Accept-Language, then the configured default.
func (h *Handler) languageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := shacl.MatchAcceptLanguage(c.GetHeader("Accept-Language"), h.defaultLanguage)
		if q := c.Query("lang"); q != "" {
			if parsed, err := shacl.ParseLanguage(q); err == nil {
				tag = parsed
			}
		}

		c.Set(_languageKey, tag)
		c.Header("Content-Language", tag.String())

		c.Next()
	}
}

func (h *Handler) bodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
		c.Next()
	}
}

func requestLanguage(c *gin.Context) language.Tag {
	if v, ok := c.Get(_languageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.English
}
