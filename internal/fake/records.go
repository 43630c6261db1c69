// Package fake generates freight records for load and smoke testing.
package fake

import (
	"fmt"
	"strings"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/shacl"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces records that pass validation unless corrupted.
type Generator struct {
	f   *gofakeit.Faker
	now func() time.Time
}

// New returns a generator; seed 0 picks a random seed.
func New(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{f: gofakeit.New(seed), now: now}
}

func (g *Generator) shipperID() string {
	return "SHP" + g.f.DigitN(3)
}

func (g *Generator) routeCode() string {
	return "RT" + g.f.DigitN(3)
}

func (g *Generator) port() string {
	return strings.ToUpper(g.f.LetterN(3))
}

func (g *Generator) Shipper() *entity.Shipper {
	return &entity.Shipper{
		ShipperID:        entity.Ptr(g.shipperID()),
		ShipperName:      entity.Ptr(g.f.Company()),
		BusinessType:     entity.Ptr(g.f.RandomString(shacl.BusinessTypes)),
		AvgMonthlyVolume: entity.Ptr(g.f.Float64Range(10, 900)),
		BookingFrequency: entity.Ptr(g.f.Float64Range(0.5, 20)),
		ChurnRisk:        entity.Ptr(g.f.Float64Range(0.01, 0.9)),
		CustomerGrade:    entity.Ptr(g.f.RandomString(shacl.CustomerGrades)),
	}
}

func (g *Generator) Booking() *entity.Booking {
	now := g.now().UTC()
	b := &entity.Booking{
		BookingID:     entity.Ptr("BK" + g.f.DigitN(10)),
		BookingDate:   entity.Ptr(now.AddDate(0, 0, -g.f.Number(0, 30)).Format(time.RFC3339)),
		BookingQty:    entity.Ptr(float64(g.f.Number(1, 500))),
		ContainerType: entity.Ptr(g.f.RandomString(shacl.ContainerTypes)),
		FreightRate:   entity.Ptr(g.f.Float64Range(500, 8000)),
		BookingStatus: entity.Ptr(g.f.RandomString(shacl.BookingStatuses)),
		ShipperID:     entity.Ptr(g.shipperID()),
		RouteCode:     entity.Ptr(g.routeCode()),
	}
	if *b.BookingStatus == "Cancelled" {
		b.CancellationReason = entity.Ptr(g.f.Word())
	}
	return b
}

func (g *Generator) Prediction() *entity.Prediction {
	now := g.now().UTC()
	return &entity.Prediction{
		PredictedDate:   entity.Ptr(now.AddDate(0, 0, g.f.Number(1, 60)).Format(time.RFC3339)),
		Confidence:      entity.Ptr(g.f.Float64Range(0.3, 0.99)),
		PredictedVolume: entity.Ptr(float64(g.f.Number(1, 500))),
		ModelVersion:    entity.Ptr(fmt.Sprintf("v%d.%d.%d", g.f.Number(0, 3), g.f.Number(0, 20), g.f.Number(0, 50))),
		PredictionDate:  entity.Ptr(now.Format(time.RFC3339)),
		ShipperID:       entity.Ptr(g.shipperID()),
	}
}

func (g *Generator) Route() *entity.Route {
	origin := g.port()
	destination := g.port()
	for destination == origin {
		destination = g.port()
	}
	return &entity.Route{
		RouteCode:       entity.Ptr(g.routeCode()),
		RouteName:       entity.Ptr(g.f.City() + " Express"),
		OriginPort:      entity.Ptr(origin),
		DestinationPort: entity.Ptr(destination),
		TransitTime:     entity.Ptr(float64(g.f.Number(1, 60))),
		BaseRate:        entity.Ptr(g.f.Float64Range(500, 9000)),
	}
}

// Batch returns a batch with n records of every kind.
func (g *Generator) Batch(n int) *entity.BatchRequest {
	b := &entity.BatchRequest{}
	for range n {
		b.Shippers = append(b.Shippers, g.Shipper())
		b.Bookings = append(b.Bookings, g.Booking())
		b.Predictions = append(b.Predictions, g.Prediction())
		b.Routes = append(b.Routes, g.Route())
	}
	return b
}

// Record returns a record of kind. Batches hold a few records of every kind.
func (g *Generator) Record(kind entity.Kind) (any, error) {
	const op = "fake.Record"

	switch kind {
	case entity.KindShipper:
		return g.Shipper(), nil
	case entity.KindBooking:
		return g.Booking(), nil
	case entity.KindPrediction:
		return g.Prediction(), nil
	case entity.KindRoute:
		return g.Route(), nil
	case entity.KindBatch:
		return g.Batch(g.f.Number(1, 3)), nil
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, entity.ErrUnknownKind, kind)
	}
}

// Corrupt breaks one constraint of rec in place so that it fails validation.
func Corrupt(rec any) {
	switch r := rec.(type) {
	case *entity.Shipper:
		r.ShipperID = entity.Ptr("CUST-1")
	case *entity.Booking:
		r.BookingQty = entity.Ptr(-5.0)
	case *entity.Prediction:
		r.Confidence = entity.Ptr(1.5)
	case *entity.Route:
		r.DestinationPort = r.OriginPort
	case *entity.BatchRequest:
		if len(r.Routes) > 0 {
			Corrupt(r.Routes[0])
			return
		}
		r.Routes = append(r.Routes, &entity.Route{})
	}
}
