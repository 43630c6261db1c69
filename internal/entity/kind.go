package entity

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindShipper    Kind = "shipper"
	KindBooking    Kind = "booking"
	KindPrediction Kind = "prediction"
	KindRoute      Kind = "route"
	KindBatch      Kind = "batch"
)

// RecordKinds lists the kinds a single record can have, in report order.
var RecordKinds = []Kind{KindShipper, KindBooking, KindPrediction, KindRoute}

// ParseKind accepts singular and plural spellings, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shipper", "shippers":
		return KindShipper, nil
	case "booking", "bookings":
		return KindBooking, nil
	case "prediction", "predictions":
		return KindPrediction, nil
	case "route", "routes":
		return KindRoute, nil
	case "batch":
		return KindBatch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) String() string {
	return string(k)
}

type Source string

const (
	SourceHTTP  Source = "http"
	SourceKafka Source = "kafka"
	SourceCLI   Source = "cli"
)

// Ptr returns a pointer to v. Record fields are pointers so that an absent
// field can be told apart from a zero value.
func Ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
