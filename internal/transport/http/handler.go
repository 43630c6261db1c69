package httpt

import (
	"context"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/service"
	"freightqa/pkg/logger"
	"freightqa/pkg/metric"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heptiolabs/healthcheck"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=handler.go -destination=mock/service.go -package=mock_httpt

const (
	_defaultRequestTimeout = 3 * time.Second
	_defaultMaxBodyBytes   = 4 << 20
	_slowRequestThreshold  = 200 * time.Millisecond
)

type ValidationService interface {
	ValidateShipper(ctx context.Context, req service.Request, rec *entity.Shipper) (*entity.Report, error)
	ValidateBooking(ctx context.Context, req service.Request, rec *entity.Booking) (*entity.Report, error)
	ValidatePrediction(ctx context.Context, req service.Request, rec *entity.Prediction) (*entity.Report, error)
	ValidateRoute(ctx context.Context, req service.Request, rec *entity.Route) (*entity.Report, error)
	ValidateBatch(ctx context.Context, req service.Request, batch *entity.BatchRequest) (*entity.BatchReport, error)
	GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	ListReports(ctx context.Context, filter entity.ReportFilter) ([]*entity.Report, error)
	Stats(ctx context.Context) ([]entity.KindStats, error)
}

type Handler struct {
	svc     ValidationService
	health  healthcheck.Handler
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
	now     func() time.Time

	defaultLanguage language.Tag
	requestTimeout  time.Duration
	maxBodyBytes    int64
}

func NewHandler(
	svc ValidationService,
	health healthcheck.Handler,
	log logger.Logger,
	metrics metric.HTTP,
	opts ...Option,
) *Handler {
	h := &Handler{
		svc:     svc,
		health:  health,
		log:     log,
		metrics: metrics,
		now:     time.Now,

		defaultLanguage: language.English,
		requestTimeout:  _defaultRequestTimeout,
		maxBodyBytes:    _defaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(h)
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(h.recoveryMiddleware())
	router.Use(h.languageMiddleware())

	h.router = router
	h.setupRoutes()

	return h
}

func (h *Handler) Engine() *gin.Engine {
	return h.router
}

func (h *Handler) recoveryMiddleware() gin.HandlerFunc {
	if z, ok := h.log.(interface{ Zap() *zap.Logger }); ok {
		return ginzap.RecoveryWithZap(z.Zap(), true)
	}
	return gin.Recovery()
}
