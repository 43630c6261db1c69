package kafkat

import (
	"bytes"
	"fmt"
	"strconv"

	"freightqa/internal/entity"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type (
	// Envelope is the wire format of the input topic.
	Envelope struct {
		Kind   entity.Kind     `json:"kind"`
		Record json.RawMessage `json:"record"`
	}

	// Rejection is published for every record whose report is invalid.
	Rejection struct {
		ReportID uuid.UUID                `json:"reportId"`
		Kind     entity.Kind              `json:"kind"`
		Record   json.RawMessage          `json:"record"`
		Result   *entity.ValidationResult `json:"result"`
	}
)

// DecodeEnvelope parses value and decodes its record into the type of the
// named kind. Every failure wraps entity.ErrMalformedRecord or
// entity.ErrUnknownKind.
func DecodeEnvelope(value []byte) (entity.Kind, any, error) {
	const op = "transport.kafka.DecodeEnvelope"

	var env Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return "", nil, fmt.Errorf("%s: %w: %w", op, entity.ErrMalformedRecord, err)
	}

	kind, err := entity.ParseKind(string(env.Kind))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	record := bytes.TrimSpace(env.Record)
	if len(record) == 0 || bytes.Equal(record, []byte("null")) {
		return "", nil, fmt.Errorf("%s: %w: empty record", op, entity.ErrMalformedRecord)
	}

	var rec any
	switch kind {
	case entity.KindShipper:
		rec = &entity.Shipper{}
	case entity.KindBooking:
		rec = &entity.Booking{}
	case entity.KindPrediction:
		rec = &entity.Prediction{}
	case entity.KindRoute:
		rec = &entity.Route{}
	case entity.KindBatch:
		rec = &entity.BatchRequest{}
	}

	if err = json.Unmarshal(record, rec); err != nil {
		return "", nil, fmt.Errorf("%s: %w: %s: %w", op, entity.ErrMalformedRecord, kind, err)
	}

	return kind, rec, nil
}

// EncodeEnvelope is the inverse of DecodeEnvelope.
func EncodeEnvelope(kind entity.Kind, rec any) ([]byte, error) {
	const op = "transport.kafka.EncodeEnvelope"

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal record: %w", op, err)
	}

	value, err := json.Marshal(Envelope{Kind: kind, Record: raw})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal envelope: %w", op, err)
	}
	return value, nil
}

// ReportID derives the report id of the message at topic/partition/offset,
// so redelivery of the same message maps to the same report.
func ReportID(topic string, partition int, offset int64) uuid.UUID {
	name := "kafka://" + topic + "/" + strconv.Itoa(partition) + "/" + strconv.FormatInt(offset, 10)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
}
