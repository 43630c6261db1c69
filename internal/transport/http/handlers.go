package httpt

import (
	"context"
	"net/http"
	"strconv"

	"freightqa/internal/entity"
	"freightqa/internal/service"
	"freightqa/internal/shacl"
	"freightqa/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	_reportIDHeader = "X-Report-ID"
	_batchIDHeader  = "X-Batch-ID"

	_defaultListLimit = 50
	_maxListLimit     = 500
)

// @Summary      Validate a shipper
// @Description  Runs the shipper shape. Invalid records are still answered with 200.
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string          false  "Message language (en, ko)"
// @Param        X-Report-ID      header    string          false  "Idempotency key (UUID)"
// @Param        record           body      entity.Shipper  true   "Shipper record"
// @Success      200              {object}  entity.ValidationResult
// @Failure      400              {object}  httpt.ErrorResponse
// @Failure      409              {object}  httpt.ErrorResponse
// @Failure      500              {object}  httpt.ErrorResponse
// @Router       /validate/shippers [post]
func (h *Handler) validateShipperHandler(c *gin.Context) {
	validateRecord(h, c, "transport.validateShipperHandler", h.svc.ValidateShipper)
}

// @Summary      Validate a booking
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string          false  "Message language (en, ko)"
// @Param        X-Report-ID      header    string          false  "Idempotency key (UUID)"
// @Param        record           body      entity.Booking  true   "Booking record"
// @Success      200              {object}  entity.ValidationResult
// @Failure      400              {object}  httpt.ErrorResponse
// @Failure      409              {object}  httpt.ErrorResponse
// @Failure      500              {object}  httpt.ErrorResponse
// @Router       /validate/bookings [post]
func (h *Handler) validateBookingHandler(c *gin.Context) {
	validateRecord(h, c, "transport.validateBookingHandler", h.svc.ValidateBooking)
}

// @Summary      Validate a demand prediction
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string             false  "Message language (en, ko)"
// @Param        X-Report-ID      header    string             false  "Idempotency key (UUID)"
// @Param        record           body      entity.Prediction  true   "Prediction record"
// @Success      200              {object}  entity.ValidationResult
// @Failure      400              {object}  httpt.ErrorResponse
// @Failure      409              {object}  httpt.ErrorResponse
// @Failure      500              {object}  httpt.ErrorResponse
// @Router       /validate/predictions [post]
func (h *Handler) validatePredictionHandler(c *gin.Context) {
	validateRecord(h, c, "transport.validatePredictionHandler", h.svc.ValidatePrediction)
}

// @Summary      Validate a route
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string        false  "Message language (en, ko)"
// @Param        X-Report-ID      header    string        false  "Idempotency key (UUID)"
// @Param        record           body      entity.Route  true   "Route record"
// @Success      200              {object}  entity.ValidationResult
// @Failure      400              {object}  httpt.ErrorResponse
// @Failure      409              {object}  httpt.ErrorResponse
// @Failure      500              {object}  httpt.ErrorResponse
// @Router       /validate/routes [post]
func (h *Handler) validateRouteHandler(c *gin.Context) {
	validateRecord(h, c, "transport.validateRouteHandler", h.svc.ValidateRoute)
}

func validateRecord[T any](
	h *Handler,
	c *gin.Context,
	op string,
	validate func(context.Context, service.Request, *T) (*entity.Report, error),
) {
	req, ok := h.serviceRequest(c, op)
	if !ok {
		return
	}

	rec := new(T)
	if err := c.ShouldBindJSON(rec); err != nil {
		h.handleBadRequest(c, op, "Malformed JSON body", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	report, err := validate(ctx, req, rec)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	h.log.Ctx(ctx).LogAttrs(ctx, logger.DebugLevel, "record validated",
		logger.String("op", op),
		logger.String("report_id", report.ID.String()),
		logger.Bool("valid", report.Result.IsValid),
	)

	c.Header(_reportIDHeader, report.ID.String())
	c.JSON(http.StatusOK, report.Result)
}

// @Summary      Validate a batch
// @Description  Validates every record of every kind; overallValid is true when no record has an error.
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string               false  "Message language (en, ko)"
// @Param        batch            body      entity.BatchRequest  true   "Records grouped by kind"
// @Success      200              {object}  entity.BatchResult
// @Failure      400              {object}  httpt.ErrorResponse
// @Failure      500              {object}  httpt.ErrorResponse
// @Router       /validate/batch [post]
func (h *Handler) validateBatchHandler(c *gin.Context) {
	const op = "transport.validateBatchHandler"

	req, ok := h.serviceRequest(c, op)
	if !ok {
		return
	}

	var batch entity.BatchRequest
	if err := c.ShouldBindJSON(&batch); err != nil {
		h.handleBadRequest(c, op, "Malformed JSON body", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	res, err := h.svc.ValidateBatch(ctx, req, &batch)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Header(_batchIDHeader, res.BatchID.String())
	c.JSON(http.StatusOK, res.Result)
}

// @Summary      Get a stored report
// @Tags         Reports
// @Produce      json
// @Param        report_id  path      string  true  "Report id (UUID)"
// @Success      200        {object}  entity.Report
// @Failure      400        {object}  httpt.ErrorResponse
// @Failure      404        {object}  httpt.ErrorResponse
// @Failure      500        {object}  httpt.ErrorResponse
// @Router       /reports/{report_id} [get]
func (h *Handler) getReportHandler(c *gin.Context) {
	const op = "transport.getReportHandler"

	raw := c.Param("report_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.handleBadRequest(c, op, "Invalid report id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	report, err := h.svc.GetReport(ctx, id)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary      List stored reports
// @Description  Newest first, without violations.
// @Tags         Reports
// @Produce      json
// @Param        kind   query     string  false  "shipper, booking, prediction or route"
// @Param        valid  query     bool    false  "Only valid or only invalid reports"
// @Param        limit  query     int     false  "Page size (1-500, default 50)"
// @Success      200    {object}  httpt.ReportListResponse
// @Failure      400    {object}  httpt.ErrorResponse
// @Failure      500    {object}  httpt.ErrorResponse
// @Router       /reports [get]
func (h *Handler) listReportsHandler(c *gin.Context) {
	const op = "transport.listReportsHandler"

	filter, err := parseReportFilter(c)
	if err != nil {
		h.handleBadRequest(c, op, "Invalid report filter", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	reports, err := h.svc.ListReports(ctx, filter)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	resp := ReportListResponse{Reports: make([]ReportSummary, 0, len(reports))}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, newReportSummary(r))
	}
	resp.Count = len(resp.Reports)

	c.JSON(http.StatusOK, resp)
}

// @Summary      Report statistics per kind
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  httpt.StatsResponse
// @Failure      500  {object}  httpt.ErrorResponse
// @Router       /reports/stats [get]
func (h *Handler) statsHandler(c *gin.Context) {
	const op = "transport.statsHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}
	if stats == nil {
		stats = []entity.KindStats{}
	}

	c.JSON(http.StatusOK, StatsResponse{Kinds: stats})
}

// @Summary      Sample record
// @Description  A well-formed record of the kind; "batch" returns one record of every kind.
// @Tags         Samples
// @Produce      json
// @Param        kind  path      string  true  "shipper, booking, prediction, route or batch"
// @Success      200   {object}  object
// @Failure      404   {object}  httpt.ErrorResponse
// @Router       /samples/{kind} [get]
func (h *Handler) sampleHandler(c *gin.Context) {
	kind, err := entity.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown record kind"})
		return
	}

	sample, err := shacl.Sample(kind, h.now())
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown record kind"})
		return
	}

	c.JSON(http.StatusOK, sample)
}

func (h *Handler) serviceRequest(c *gin.Context, op string) (service.Request, bool) {
	req := service.Request{
		Source:   entity.SourceHTTP,
		Language: requestLanguage(c),
	}

	if raw := c.GetHeader(_reportIDHeader); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.handleBadRequest(c, op, "Invalid X-Report-ID header", nil)
			return req, false
		}
		req.ReportID = id
	}
	return req, true
}

func parseReportFilter(c *gin.Context) (entity.ReportFilter, error) {
	filter := entity.ReportFilter{Limit: _defaultListLimit}

	if raw := c.Query("kind"); raw != "" {
		kind, err := entity.ParseKind(raw)
		if err != nil {
			return filter, err
		}
		if kind == entity.KindBatch {
			return filter, entity.ErrUnknownKind
		}
		filter.Kind = kind
	}

	if raw := c.Query("valid"); raw != "" {
		valid, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.Valid = &valid
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		if limit == 0 || limit > _maxListLimit {
			return filter, strconv.ErrRange
		}
		filter.Limit = limit
	}

	return filter, nil
}
