package shacl

import (
	"fmt"
	"time"

	"freightqa/internal/entity"
)

const _predictionHorizon = 7 * 24 * time.Hour

// Samples returns one well-formed record of every kind, dated relative to now.
// Every record validates without errors; the prediction carries a
// high-confidence info note.
func Samples(now time.Time) *entity.BatchRequest {
	now = now.UTC()
	return &entity.BatchRequest{
		Shippers: []*entity.Shipper{{
			ShipperID:        entity.Ptr("SHP001"),
			ShipperName:      entity.Ptr("Samsung Electronics"),
			BusinessType:     entity.Ptr("Electronics"),
			AvgMonthlyVolume: entity.Ptr(650.0),
			BookingFrequency: entity.Ptr(3.5),
			ChurnRisk:        entity.Ptr(0.15),
			CustomerGrade:    entity.Ptr("VIP"),
		}},
		Bookings: []*entity.Booking{{
			BookingID:     entity.Ptr("BK0000000001"),
			BookingDate:   entity.Ptr(now.Format(time.RFC3339)),
			BookingQty:    entity.Ptr(50.0),
			ContainerType: entity.Ptr("40HC"),
			FreightRate:   entity.Ptr(2500.0),
			BookingStatus: entity.Ptr("Confirmed"),
			ShipperID:     entity.Ptr("SHP001"),
			RouteCode:     entity.Ptr("RT001"),
		}},
		Predictions: []*entity.Prediction{{
			PredictedDate:   entity.Ptr(now.Add(_predictionHorizon).Format(time.RFC3339)),
			Confidence:      entity.Ptr(0.92),
			PredictedVolume: entity.Ptr(45.0),
			ModelVersion:    entity.Ptr("v1.2.3"),
			PredictionDate:  entity.Ptr(now.Format(time.RFC3339)),
			ShipperID:       entity.Ptr("SHP001"),
		}},
		Routes: []*entity.Route{{
			RouteCode:       entity.Ptr("RT001"),
			RouteName:       entity.Ptr("Korea-LA Express"),
			OriginPort:      entity.Ptr("PUS"),
			DestinationPort: entity.Ptr("LAX"),
			TransitTime:     entity.Ptr(14.0),
			BaseRate:        entity.Ptr(2800.0),
		}},
	}
}

// Sample returns the sample record of kind; for KindBatch the whole set.
func Sample(kind entity.Kind, now time.Time) (any, error) {
	const op = "shacl.Sample"

	s := Samples(now)
	switch kind {
	case entity.KindShipper:
		return s.Shippers[0], nil
	case entity.KindBooking:
		return s.Bookings[0], nil
	case entity.KindPrediction:
		return s.Predictions[0], nil
	case entity.KindRoute:
		return s.Routes[0], nil
	case entity.KindBatch:
		return s, nil
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, entity.ErrUnknownKind, kind)
	}
}
