package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"freightqa/internal/entity"
	mock_repository "freightqa/internal/repository/mock"
	"freightqa/internal/service"
	"freightqa/internal/shacl"
	mock_cache "freightqa/pkg/cache/mock"
	"freightqa/pkg/logger"
	mock_logger "freightqa/pkg/logger/mock"
	mock_metric "freightqa/pkg/metric/mock"
	"freightqa/pkg/storage/postgres"
	mock_transaction "freightqa/pkg/storage/postgres/transaction/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type mocks struct {
	reportRepo    *mock_repository.MockReportRepository
	violationRepo *mock_repository.MockViolationRepository
	txManager     *mock_transaction.MockManager
	logger        *mock_logger.MockLogger
	metrics       *mock_metric.MockValidation
	cache         *mock_cache.MockCache[uuid.UUID, *entity.Report]
}

func newService(t *testing.T) (*service.ValidationService, *mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		reportRepo:    mock_repository.NewMockReportRepository(ctrl),
		violationRepo: mock_repository.NewMockViolationRepository(ctrl),
		txManager:     mock_transaction.NewMockManager(ctrl),
		logger:        mock_logger.NewMockLogger(ctrl),
		metrics:       mock_metric.NewMockValidation(ctrl),
		cache:         mock_cache.NewMockCache[uuid.UUID, *entity.Report](ctrl),
	}

	m.cache.EXPECT().SetOnEvicted(gomock.Any()).Times(1)
	m.logger.EXPECT().Ctx(gomock.Any()).Return(m.logger).AnyTimes()

	svc := service.NewValidationService(
		m.reportRepo,
		m.violationRepo,
		m.txManager,
		m.logger,
		m.metrics,
		m.cache,
		time.Minute,
	)
	return svc, m
}

func runTx(ctx context.Context, _ string, fn func(postgres.QueryExecuter) error) error {
	return fn(nil)
}

func fakeShipper() *entity.Shipper {
	return &entity.Shipper{
		ShipperID:        entity.Ptr("SHP" + gofakeit.DigitN(3)),
		ShipperName:      entity.Ptr(gofakeit.Company()),
		BusinessType:     entity.Ptr("Electronics"),
		AvgMonthlyVolume: entity.Ptr(gofakeit.Float64Range(10, 400)),
		BookingFrequency: entity.Ptr(gofakeit.Float64Range(0.5, 10)),
		ChurnRisk:        entity.Ptr(gofakeit.Float64Range(0, 0.5)),
		CustomerGrade:    entity.Ptr("GradeB"),
	}
}

func TestValidationService_ValidateShipper(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc      string
		setup     func() (*entity.Shipper, service.Request)
		mocks     func(m *mocks, rec *entity.Shipper, req service.Request)
		wantValid bool
		wantErr   error
	}{
		{
			desc: "ValidRecordIsRecorded",
			setup: func() (*entity.Shipper, service.Request) {
				return fakeShipper(), service.Request{Source: entity.SourceHTTP}
			},
			mocks: func(m *mocks, rec *entity.Shipper, _ service.Request) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ postgres.QueryExecuter, r *entity.Report) error {
						require.NotEqual(t, uuid.Nil, r.ID)
						require.Equal(t, entity.KindShipper, r.Kind)
						require.Equal(t, *rec.ShipperID, r.SubjectKey)
						return nil
					}).Times(1)
				m.violationRepo.EXPECT().Create(ctx, nil, gomock.Any(), gomock.Any()).Return(nil).Times(1)
				m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), time.Minute).Times(1)
				m.metrics.EXPECT().Record("shipper", "http", "valid").Times(1)
				m.metrics.EXPECT().Violation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				m.metrics.EXPECT().ObserveDuration("shipper", gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "record validated", gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "slow service operation", gomock.Any()).AnyTimes()
			},
			wantValid: true,
		},
		{
			desc: "EmptyRecordIsRecordedAsInvalid",
			setup: func() (*entity.Shipper, service.Request) {
				return &entity.Shipper{}, service.Request{Source: entity.SourceKafka}
			},
			mocks: func(m *mocks, _ *entity.Shipper, _ service.Request) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil).Times(1)
				m.violationRepo.EXPECT().Create(ctx, nil, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ postgres.QueryExecuter, _ uuid.UUID, v []entity.Violation) error {
						require.NotEmpty(t, v)
						return nil
					}).Times(1)
				m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), time.Minute).Times(1)
				m.metrics.EXPECT().Record("shipper", "kafka", "invalid").Times(1)
				m.metrics.EXPECT().Violation("shipper", gomock.Any(), "error").MinTimes(1)
				m.metrics.EXPECT().Violation("shipper", gomock.Any(), gomock.Any()).AnyTimes()
				m.metrics.EXPECT().ObserveDuration("shipper", gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "record validated", gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "slow service operation", gomock.Any()).AnyTimes()
			},
			wantValid: false,
		},
		{
			desc: "AlreadyRecordedReportIsReturned",
			setup: func() (*entity.Shipper, service.Request) {
				return fakeShipper(), service.Request{ReportID: uuid.New(), Source: entity.SourceKafka}
			},
			mocks: func(m *mocks, rec *entity.Shipper, req service.Request) {
				existing := &entity.Report{
					ID:         req.ReportID,
					Kind:       entity.KindShipper,
					SubjectKey: *rec.ShipperID,
					Result:     entity.NewValidationResult(nil),
				}
				m.cache.EXPECT().Get(req.ReportID).Return(existing, true).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantValid: true,
		},
		{
			desc: "UnknownReportIDIsRecordedUnderThatID",
			setup: func() (*entity.Shipper, service.Request) {
				return fakeShipper(), service.Request{ReportID: uuid.New(), Source: entity.SourceKafka}
			},
			mocks: func(m *mocks, _ *entity.Shipper, req service.Request) {
				m.cache.EXPECT().Get(req.ReportID).Return(nil, false).Times(1)
				m.reportRepo.EXPECT().GetByID(gomock.Any(), req.ReportID).
					Return(nil, entity.ErrDataNotFound).Times(1)
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ postgres.QueryExecuter, r *entity.Report) error {
						require.Equal(t, req.ReportID, r.ID)
						return nil
					}).Times(1)
				m.violationRepo.EXPECT().Create(ctx, nil, req.ReportID, gomock.Any()).Return(nil).Times(1)
				m.cache.EXPECT().Put(req.ReportID, gomock.Any(), time.Minute).Times(1)
				m.metrics.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
				m.metrics.EXPECT().Violation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				m.metrics.EXPECT().ObserveDuration(gomock.Any(), gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantValid: true,
		},
		{
			desc: "TransactionError",
			setup: func() (*entity.Shipper, service.Request) {
				return fakeShipper(), service.Request{Source: entity.SourceHTTP}
			},
			mocks: func(m *mocks, _ *entity.Shipper, _ service.Request) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
					Return(errors.New("transaction error")).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "recording report failed", gomock.Any()).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "slow service operation", gomock.Any()).AnyTimes()
			},
			wantErr: errors.New("transaction error"),
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			svc, m := newService(t)
			rec, req := tC.setup()
			tC.mocks(m, rec, req)

			report, err := svc.ValidateShipper(ctx, req, rec)
			if tC.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tC.wantErr.Error())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, report)
			require.Equal(t, tC.wantValid, report.Result.IsValid)
			if req.ReportID != uuid.Nil {
				require.Equal(t, req.ReportID, report.ID)
			}
		})
	}
}

func TestValidationService_ConflictReturnsStoredReport(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	id := uuid.New()
	route := shacl.Samples(time.Now()).Routes[0]
	stored := &entity.Report{
		ID:         id,
		Kind:       entity.KindRoute,
		SubjectKey: route.SubjectKey(),
		Result:     entity.NewValidationResult(nil),
	}

	gomock.InOrder(
		m.cache.EXPECT().Get(id).Return(nil, false),
		m.reportRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, entity.ErrDataNotFound),
		m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
			Return(entity.ErrConflictingData),
		m.cache.EXPECT().Get(id).Return(stored, true),
	)
	m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	report, err := svc.ValidateRoute(ctx, service.Request{ReportID: id, Source: entity.SourceKafka}, route)
	require.NoError(t, err)
	require.Same(t, stored, report)
}

func TestValidationService_ReusedReportID(t *testing.T) {
	ctx := context.Background()

	route := shacl.Samples(time.Now()).Routes[0]
	loop := *route
	loop.DestinationPort = loop.OriginPort

	testCases := []struct {
		desc   string
		stored func(id uuid.UUID) *entity.Report
		route  *entity.Route
	}{
		{
			desc: "RecordedForAnotherKind",
			stored: func(id uuid.UUID) *entity.Report {
				shipper := fakeShipper()
				return &entity.Report{
					ID:         id,
					Kind:       entity.KindShipper,
					SubjectKey: shipper.SubjectKey(),
					Result:     entity.NewValidationResult(nil),
				}
			},
			route: &loop,
		},
		{
			desc: "RecordedForAnotherRoute",
			stored: func(id uuid.UUID) *entity.Report {
				return &entity.Report{
					ID:         id,
					Kind:       entity.KindRoute,
					SubjectKey: "some-other-route",
					Result:     entity.NewValidationResult(nil),
				}
			},
			route: route,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			svc, m := newService(t)
			id := uuid.New()

			m.cache.EXPECT().Get(id).Return(tC.stored(id), true).Times(1)
			m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			report, err := svc.ValidateRoute(ctx, service.Request{ReportID: id, Source: entity.SourceHTTP}, tC.route)
			require.ErrorIs(t, err, entity.ErrConflictingData)
			require.Nil(t, report)
		})
	}
}

func TestValidationService_ConflictWithAnotherRecord(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	id := uuid.New()
	stored := &entity.Report{
		ID:         id,
		Kind:       entity.KindBooking,
		SubjectKey: "BK-1",
		Result:     entity.NewValidationResult(nil),
	}

	gomock.InOrder(
		m.cache.EXPECT().Get(id).Return(nil, false),
		m.reportRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, entity.ErrDataNotFound),
		m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).
			Return(entity.ErrConflictingData),
		m.cache.EXPECT().Get(id).Return(stored, true),
	)
	m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	route := shacl.Samples(time.Now()).Routes[0]
	report, err := svc.ValidateRoute(ctx, service.Request{ReportID: id, Source: entity.SourceKafka}, route)
	require.ErrorIs(t, err, entity.ErrConflictingData)
	require.Nil(t, report)
}

func TestValidationService_ValidateRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.ValidateRecord(ctx, service.Request{}, entity.KindBooking, &entity.Route{})
	require.ErrorIs(t, err, entity.ErrUnknownKind)

	_, err = svc.ValidateRecord(ctx, service.Request{}, entity.KindShipper, "shipper")
	require.ErrorIs(t, err, entity.ErrUnknownKind)
}

func TestValidationService_Language(t *testing.T) {
	svc, _ := newService(t)

	require.Equal(t, language.Korean, svc.Engine(language.Korean).Language())
	require.Equal(t, language.English, svc.Engine(language.French).Language())
	require.Equal(t, language.English, svc.Engine(language.Und).Language())
}

func TestValidationService_LogsMessageLanguage(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	var attrs []logger.Attr
	m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordReport", gomock.Any()).Return(nil).Times(1)
	m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), time.Minute).Times(1)
	m.metrics.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	m.metrics.EXPECT().Violation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.metrics.EXPECT().ObserveDuration(gomock.Any(), gomock.Any()).Times(1)
	m.logger.EXPECT().LogAttrs(ctx, logger.InfoLevel, "record validated", gomock.Any()).
		Do(func(_ context.Context, _ logger.Level, _ string, a ...logger.Attr) {
			attrs = a
		}).Times(1)
	m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "slow service operation", gomock.Any()).AnyTimes()

	_, err := svc.ValidateShipper(ctx, service.Request{Source: entity.SourceHTTP, Language: language.MustParse("ko-KR")}, fakeShipper())
	require.NoError(t, err)
	require.Contains(t, attrs, logger.String("language", "ko"))
}

func TestValidationService_ValidateBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		desc    string
		batch   func() *entity.BatchRequest
		mocks   func(m *mocks)
		records int
		overall bool
		wantErr bool
	}{
		{
			desc:  "SamplesAreRecordedInOneTransaction",
			batch: func() *entity.BatchRequest { return shacl.Samples(now) },
			mocks: func(m *mocks) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordBatch", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil).Times(4)
				m.violationRepo.EXPECT().Create(ctx, nil, gomock.Any(), gomock.Any()).Return(nil).Times(4)
				m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), time.Minute).Times(4)
				m.metrics.EXPECT().Record(gomock.Any(), gomock.Any(), "valid").Times(4)
				m.metrics.EXPECT().Violation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				m.metrics.EXPECT().ObserveDuration(gomock.Any(), gomock.Any()).Times(4)
			},
			records: 4,
			overall: true,
		},
		{
			desc: "OneBadRouteFailsTheBatch",
			batch: func() *entity.BatchRequest {
				b := shacl.Samples(now)
				b.Routes = append(b.Routes, &entity.Route{})
				return b
			},
			mocks: func(m *mocks) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordBatch", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil).Times(5)
				m.violationRepo.EXPECT().Create(ctx, nil, gomock.Any(), gomock.Any()).Return(nil).Times(5)
				m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), time.Minute).Times(5)
				m.metrics.EXPECT().Record(gomock.Any(), gomock.Any(), "valid").Times(4)
				m.metrics.EXPECT().Record("route", gomock.Any(), "invalid").Times(1)
				m.metrics.EXPECT().Violation(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				m.metrics.EXPECT().ObserveDuration(gomock.Any(), gomock.Any()).Times(5)
			},
			records: 5,
			overall: false,
		},
		{
			desc:  "NilBatchIsEmpty",
			batch: func() *entity.BatchRequest { return nil },
			mocks: func(m *mocks) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordBatch", gomock.Any()).
					DoAndReturn(runTx).Times(1)
			},
			records: 0,
			overall: true,
		},
		{
			desc:  "ReplayedBatchIsNotRecordedTwice",
			batch: func() *entity.BatchRequest { return shacl.Samples(now) },
			mocks: func(m *mocks) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordBatch", gomock.Any()).
					DoAndReturn(runTx).Times(1)
				m.reportRepo.EXPECT().Create(ctx, nil, gomock.Any()).
					Return(entity.ErrConflictingData).Times(1)
			},
			records: 4,
			overall: true,
		},
		{
			desc:  "StorageFailure",
			batch: func() *entity.BatchRequest { return shacl.Samples(now) },
			mocks: func(m *mocks) {
				m.txManager.EXPECT().ExecuteInTransaction(ctx, "RecordBatch", gomock.Any()).
					Return(errors.New("connection reset")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			svc, m := newService(t)
			tC.mocks(m)
			m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			batchID := uuid.New()
			res, err := svc.ValidateBatch(ctx, service.Request{ReportID: batchID, Source: entity.SourceHTTP}, tC.batch())
			if tC.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, batchID, res.BatchID)
			require.Len(t, res.Reports, tC.records)
			require.Equal(t, tC.overall, res.Result.OverallValid)
			for _, r := range res.Reports {
				require.Equal(t, batchID, *r.BatchID)
			}
		})
	}
}

func TestElementReportID(t *testing.T) {
	batchID := uuid.New()

	a := service.ElementReportID(batchID, entity.KindBooking, 0)
	require.Equal(t, a, service.ElementReportID(batchID, entity.KindBooking, 0))
	require.NotEqual(t, a, service.ElementReportID(batchID, entity.KindBooking, 1))
	require.NotEqual(t, a, service.ElementReportID(batchID, entity.KindRoute, 0))
	require.NotEqual(t, a, service.ElementReportID(uuid.New(), entity.KindBooking, 0))
}

func TestValidationService_GetReport(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		desc    string
		mocks   func(m *mocks)
		wantErr error
		wantLen int
	}{
		{
			desc: "CacheHit",
			mocks: func(m *mocks) {
				m.cache.EXPECT().Get(id).Return(&entity.Report{
					ID:     id,
					Result: entity.NewValidationResult([]entity.Violation{{Severity: entity.SeverityInfo}}),
				}, true).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "report served from cache", gomock.Any()).Times(1)
			},
			wantLen: 1,
		},
		{
			desc: "LoadedFromDatabase",
			mocks: func(m *mocks) {
				m.cache.EXPECT().Get(id).Return(nil, false).Times(1)
				m.reportRepo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Report{
					ID:     id,
					Result: entity.NewValidationResult(nil),
				}, nil).Times(1)
				m.violationRepo.EXPECT().ListByReportIDs(gomock.Any(), []uuid.UUID{id}).
					Return(map[uuid.UUID][]entity.Violation{
						id: {{Severity: entity.SeverityError}, {Severity: entity.SeverityWarning}},
					}, nil).Times(1)
				m.cache.EXPECT().Put(id, gomock.Any(), time.Minute).Times(1)
			},
			wantLen: 2,
		},
		{
			desc: "NotFound",
			mocks: func(m *mocks) {
				m.cache.EXPECT().Get(id).Return(nil, false).Times(1)
				m.reportRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, entity.ErrDataNotFound).Times(1)
			},
			wantErr: entity.ErrDataNotFound,
		},
		{
			desc: "ViolationsQueryFails",
			mocks: func(m *mocks) {
				m.cache.EXPECT().Get(id).Return(nil, false).Times(1)
				m.reportRepo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Report{
					ID:     id,
					Result: entity.NewValidationResult(nil),
				}, nil).Times(1)
				m.violationRepo.EXPECT().ListByReportIDs(gomock.Any(), gomock.Any()).
					Return(nil, context.DeadlineExceeded).Times(1)
				m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), "failed to get report from database", gomock.Any()).Times(1)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			svc, m := newService(t)
			tC.mocks(m)

			report, err := svc.GetReport(ctx, id)
			if tC.wantErr != nil {
				require.ErrorIs(t, err, tC.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, report.Result.Violations, tC.wantLen)
		})
	}
}

func TestValidationService_ListReportsAndStats(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	filter := entity.ReportFilter{Kind: entity.KindBooking, Valid: entity.Ptr(false), Limit: 10}
	m.reportRepo.EXPECT().List(gomock.Any(), filter).Return([]*entity.Report{{ID: uuid.New()}}, nil).Times(1)
	m.reportRepo.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	reports, err := svc.ListReports(ctx, filter)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	_, err = svc.Stats(ctx)
	require.ErrorContains(t, err, "service.Stats: db down")
}

func TestValidationService_RestoreCache(t *testing.T) {
	ctx := context.Background()

	t.Run("NewestEndsUpMostRecent", func(t *testing.T) {
		svc, m := newService(t)
		newest, oldest := uuid.New(), uuid.New()

		m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		m.reportRepo.EXPECT().List(ctx, entity.ReportFilter{Limit: 2}).Return([]*entity.Report{
			{ID: newest, Result: entity.NewValidationResult(nil)},
			{ID: oldest, Result: entity.NewValidationResult(nil)},
		}, nil).Times(1)
		m.violationRepo.EXPECT().ListByReportIDs(ctx, []uuid.UUID{newest, oldest}).
			Return(map[uuid.UUID][]entity.Violation{}, nil).Times(1)
		gomock.InOrder(
			m.cache.EXPECT().Put(oldest, gomock.Any(), time.Minute),
			m.cache.EXPECT().Put(newest, gomock.Any(), time.Minute),
		)

		require.NoError(t, svc.RestoreCache(ctx, 2))
	})

	t.Run("EmptyDatabase", func(t *testing.T) {
		svc, m := newService(t)

		m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		m.reportRepo.EXPECT().List(ctx, gomock.Any()).Return(nil, nil).Times(1)

		require.NoError(t, svc.RestoreCache(ctx, 100))
	})

	t.Run("ListFails", func(t *testing.T) {
		svc, m := newService(t)

		m.logger.EXPECT().LogAttrs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		m.reportRepo.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		require.ErrorContains(t, svc.RestoreCache(ctx, 100), "list reports")
	})
}
