package httpt

import (
	"context"
	"errors"
	"net/http"

	"freightqa/internal/entity"
	"freightqa/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleServiceError(c *gin.Context, err error, op string) {
	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	switch {
	case errors.Is(err, entity.ErrMalformedRecord),
		errors.Is(err, entity.ErrUnknownKind):
		log.LogAttrs(ctx, logger.WarnLevel, op+" rejected request",
			logger.Err(err),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrConflictingData):
		log.LogAttrs(ctx, logger.WarnLevel, "report id already used",
			logger.String("op", op),
			logger.Err(err),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Report ID already used for another record", Details: err.Error()})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(ctx, logger.WarnLevel, "report not found",
			logger.String("op", op),
			logger.String("report_id", c.Param("report_id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Report not found"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(ctx, logger.WarnLevel, "request timeout",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(ctx, logger.ErrorLevel, "internal server error",
			logger.String("op", op),
			logger.Err(err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

func (h *Handler) handleBadRequest(c *gin.Context, op, message string, err error) {
	ctx := c.Request.Context()

	attrs := []logger.Attr{
		logger.String("op", op),
		logger.String("remote_addr", c.ClientIP()),
	}
	if err != nil {
		attrs = append(attrs, logger.Err(err))
	}
	h.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, message, attrs...)

	body := ErrorResponse{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
