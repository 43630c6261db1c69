package httpt_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/service"
	"freightqa/internal/shacl"
	httpt "freightqa/internal/transport/http"
	mock_httpt "freightqa/internal/transport/http/mock"
	"freightqa/pkg/logger"
	mock_metric "freightqa/pkg/metric/mock"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/heptiolabs/healthcheck"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newHandler(t *testing.T) (*httpt.Handler, *mock_httpt.MockValidationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock_httpt.NewMockValidationService(ctrl)
	metrics := mock_metric.NewMockHTTP(ctrl)
	metrics.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().SlowRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	h := httpt.NewHandler(
		svc,
		healthcheck.NewHandler(),
		logger.NewAdapterFromZap(zap.NewNop()),
		metrics,
		httpt.DefaultLanguage(language.English),
		httpt.RequestTimeout(time.Second),
		httpt.WithClock(func() time.Time { return fixedNow }),
	)
	return h, svc
}

func do(h *httpt.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.Engine().ServeHTTP(w, req)
	return w
}

func routeReport(rec *entity.Route) *entity.Report {
	res, _ := shacl.New().Validate(entity.KindRoute, rec)
	return &entity.Report{ID: uuid.New(), Kind: entity.KindRoute, Result: res}
}

func TestHandler_ValidateRoute(t *testing.T) {
	reportID := uuid.New()

	testCases := []struct {
		desc       string
		body       string
		headers    map[string]string
		mocks      func(svc *mock_httpt.MockValidationService)
		wantStatus int
		wantValid  *bool
	}{
		{
			desc: "InvalidRecordIs200",
			body: `{"routeCode":"RT001","originPort":"PUS","destinationPort":"PUS"}`,
			headers: map[string]string{
				"Accept-Language": "ko-KR,ko;q=0.9,en;q=0.8",
			},
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req service.Request, rec *entity.Route) (*entity.Report, error) {
						require.Equal(t, language.Korean, req.Language)
						require.Equal(t, entity.SourceHTTP, req.Source)
						require.Equal(t, uuid.Nil, req.ReportID)
						require.Equal(t, "PUS", *rec.OriginPort)
						return routeReport(rec), nil
					}).Times(1)
			},
			wantStatus: http.StatusOK,
			wantValid:  entity.Ptr(false),
		},
		{
			desc:    "IdempotencyKeyIsPassedThrough",
			body:    `{"routeCode":"RT001"}`,
			headers: map[string]string{"X-Report-ID": reportID.String()},
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req service.Request, rec *entity.Route) (*entity.Report, error) {
						require.Equal(t, reportID, req.ReportID)
						return routeReport(rec), nil
					}).Times(1)
			},
			wantStatus: http.StatusOK,
			wantValid:  entity.Ptr(false),
		},
		{
			desc:    "IdempotencyKeyOfAnotherRecord",
			body:    `{"routeCode":"RT001","originPort":"PUS","destinationPort":"PUS"}`,
			headers: map[string]string{"X-Report-ID": reportID.String()},
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("service.Validate: check duplicate: %w", entity.ErrConflictingData)).Times(1)
			},
			wantStatus: http.StatusConflict,
		},
		{
			desc:       "BadIdempotencyKey",
			body:       `{}`,
			headers:    map[string]string{"X-Report-ID": "42"},
			mocks:      func(*mock_httpt.MockValidationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			desc:       "SyntaxError",
			body:       `{"routeCode":`,
			mocks:      func(*mock_httpt.MockValidationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			desc:       "TypeMismatch",
			body:       `{"transitTime":"fourteen"}`,
			mocks:      func(*mock_httpt.MockValidationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			desc: "StorageFailure",
			body: `{}`,
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			desc: "Timeout",
			body: `{}`,
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, context.DeadlineExceeded).Times(1)
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			desc: "PanicIsRecovered",
			body: `{}`,
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().ValidateRoute(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, service.Request, *entity.Route) (*entity.Report, error) {
						panic("boom")
					}).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			h, svc := newHandler(t)
			tC.mocks(svc)

			w := do(h, http.MethodPost, "/api/v1/validate/routes", tC.body, tC.headers)
			require.Equal(t, tC.wantStatus, w.Code)
			require.NotEmpty(t, w.Header().Get("X-Request-ID"))

			if tC.wantValid == nil {
				return
			}

			var res entity.ValidationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.Equal(t, *tC.wantValid, res.IsValid)
			require.NotEmpty(t, res.Violations)
			_, err := uuid.Parse(w.Header().Get("X-Report-ID"))
			require.NoError(t, err)
		})
	}
}

func TestHandler_ValidateOtherKinds(t *testing.T) {
	h, svc := newHandler(t)
	ok := &entity.Report{ID: uuid.New(), Result: entity.NewValidationResult(nil)}

	svc.EXPECT().ValidateShipper(gomock.Any(), gomock.Any(), gomock.Any()).Return(ok, nil).Times(1)
	svc.EXPECT().ValidateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(ok, nil).Times(1)
	svc.EXPECT().ValidatePrediction(gomock.Any(), gomock.Any(), gomock.Any()).Return(ok, nil).Times(1)

	for _, path := range []string{"shippers", "bookings", "predictions"} {
		w := do(h, http.MethodPost, "/api/v1/validate/"+path, `{}`, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		require.JSONEq(t, `{"isValid":true,"violations":[],"summary":{"totalChecks":0,"passed":0,"failed":0}}`, w.Body.String())
	}
}

func TestHandler_ValidateBatch(t *testing.T) {
	h, svc := newHandler(t)
	batchID := uuid.New()

	svc.EXPECT().ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Request, b *entity.BatchRequest) (*entity.BatchReport, error) {
			require.Len(t, b.Bookings, 2)
			require.Empty(t, b.Shippers)
			return &entity.BatchReport{BatchID: batchID, Result: shacl.New().ValidateBatch(b)}, nil
		}).Times(1)

	w := do(h, http.MethodPost, "/api/v1/validate/batch", `{"bookings":[{},{"bookingId":"BK0000000001"}]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, batchID.String(), w.Header().Get("X-Batch-ID"))

	var res entity.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.False(t, res.OverallValid)
	require.Len(t, res.Bookings, 2)
	require.Empty(t, res.Shippers)
}

func TestHandler_GetReport(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		desc       string
		path       string
		mocks      func(svc *mock_httpt.MockValidationService)
		wantStatus int
	}{
		{
			desc: "Found",
			path: "/api/v1/reports/" + id.String(),
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().GetReport(gomock.Any(), id).
					Return(&entity.Report{ID: id, Result: entity.NewValidationResult(nil)}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
		},
		{
			desc: "NotFound",
			path: "/api/v1/reports/" + id.String(),
			mocks: func(svc *mock_httpt.MockValidationService) {
				svc.EXPECT().GetReport(gomock.Any(), id).Return(nil, entity.ErrDataNotFound).Times(1)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			desc:       "MalformedID",
			path:       "/api/v1/reports/not-a-uuid",
			mocks:      func(*mock_httpt.MockValidationService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			h, svc := newHandler(t)
			tC.mocks(svc)

			w := do(h, http.MethodGet, tC.path, "", nil)
			require.Equal(t, tC.wantStatus, w.Code)
		})
	}
}

func TestHandler_ListReports(t *testing.T) {
	testCases := []struct {
		desc       string
		query      string
		wantFilter *entity.ReportFilter
		wantStatus int
	}{
		{
			desc:       "Defaults",
			query:      "",
			wantFilter: &entity.ReportFilter{Limit: 50},
			wantStatus: http.StatusOK,
		},
		{
			desc:       "AllFilters",
			query:      "?kind=bookings&valid=false&limit=10",
			wantFilter: &entity.ReportFilter{Kind: entity.KindBooking, Valid: entity.Ptr(false), Limit: 10},
			wantStatus: http.StatusOK,
		},
		{desc: "UnknownKind", query: "?kind=invoice", wantStatus: http.StatusBadRequest},
		{desc: "BatchKind", query: "?kind=batch", wantStatus: http.StatusBadRequest},
		{desc: "BadValid", query: "?valid=maybe", wantStatus: http.StatusBadRequest},
		{desc: "ZeroLimit", query: "?limit=0", wantStatus: http.StatusBadRequest},
		{desc: "HugeLimit", query: "?limit=100000", wantStatus: http.StatusBadRequest},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			h, svc := newHandler(t)

			if tC.wantFilter != nil {
				svc.EXPECT().ListReports(gomock.Any(), *tC.wantFilter).Return([]*entity.Report{{
					ID:         uuid.New(),
					Kind:       entity.KindBooking,
					SubjectKey: "BK0000000001",
					Result:     entity.NewValidationResult(nil),
				}}, nil).Times(1)
			}

			w := do(h, http.MethodGet, "/api/v1/reports"+tC.query, "", nil)
			require.Equal(t, tC.wantStatus, w.Code)

			if tC.wantStatus != http.StatusOK {
				return
			}
			var resp httpt.ReportListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, 1, resp.Count)
			require.True(t, resp.Reports[0].IsValid)
			require.NotContains(t, w.Body.String(), "violations")
		})
	}
}

func TestHandler_Stats(t *testing.T) {
	h, svc := newHandler(t)

	svc.EXPECT().Stats(gomock.Any()).Return(nil, nil).Times(1)

	w := do(h, http.MethodGet, "/api/v1/reports/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"kinds":[]}`, w.Body.String())
}

func TestHandler_Samples(t *testing.T) {
	testCases := []struct {
		desc       string
		kind       string
		wantStatus int
		contains   string
	}{
		{desc: "Route", kind: "routes", wantStatus: http.StatusOK, contains: `"routeCode":"RT001"`},
		{desc: "Booking", kind: "booking", wantStatus: http.StatusOK, contains: `"bookingDate":"2026-03-01T09:00:00Z"`},
		{desc: "Batch", kind: "batch", wantStatus: http.StatusOK, contains: `"predictions"`},
		{desc: "Unknown", kind: "invoice", wantStatus: http.StatusNotFound},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			h, _ := newHandler(t)

			w := do(h, http.MethodGet, "/api/v1/samples/"+tC.kind, "", nil)
			require.Equal(t, tC.wantStatus, w.Code)
			require.Contains(t, w.Body.String(), tC.contains)
		})
	}
}

func TestHandler_Probes(t *testing.T) {
	h, _ := newHandler(t)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := do(h, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestHandler_LanguageQueryOverridesHeader(t *testing.T) {
	h, svc := newHandler(t)

	svc.EXPECT().ValidateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.Request, _ *entity.Booking) (*entity.Report, error) {
			require.Equal(t, language.Korean, req.Language)
			return &entity.Report{ID: uuid.New(), Result: entity.NewValidationResult(nil)}, nil
		}).Times(1)

	w := do(h, http.MethodPost, "/api/v1/validate/bookings?lang=ko", `{}`, map[string]string{"Accept-Language": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ko", w.Header().Get("Content-Language"))
}
