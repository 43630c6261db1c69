// Package shacl checks freight-booking records against shape constraints
// and business rules in the manner of SHACL, as plain procedural checks.
//
// A Validator holds no state besides its message printer, so one value can
// serve any number of goroutines. Problems in the data are reported as
// violations; validation itself never fails.
package shacl

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"

	"freightqa/internal/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ShapeShipper    = "ShipperShape"
	ShapeBooking    = "BookingShape"
	ShapePrediction = "PredictionShape"
	ShapeRoute      = "RouteShape"

	RuleVIPShipper               = "VIPShipperRule"
	RuleChurnRiskShipper         = "ChurnRiskShipperRule"
	RuleHighConfidencePrediction = "HighConfidencePredictionRule"
)

type Validator struct {
	lang    language.Tag
	printer *message.Printer
}

type Option func(*Validator)

// WithLanguage selects the language of violation messages. Unsupported
// languages fall back to English.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.lang = tag
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{lang: language.English}
	for _, opt := range opts {
		opt(v)
	}
	v.lang = MatchLanguage(v.lang)
	v.printer = message.NewPrinter(v.lang, message.Catalog(messages))
	return v
}

func (v *Validator) Language() language.Tag {
	return v.lang
}

// shapeCheck collects the violations of one record in evaluation order.
type shapeCheck struct {
	printer    *message.Printer
	shape      string
	violations []entity.Violation
}

func (v *Validator) check(shape string) *shapeCheck {
	return &shapeCheck{
		printer:    v.printer,
		shape:      shape,
		violations: make([]entity.Violation, 0),
	}
}

func (c *shapeCheck) add(severity entity.Severity, shape, property string, value any, key string, args ...any) {
	c.violations = append(c.violations, entity.Violation{
		Severity: severity,
		Shape:    shape,
		Property: property,
		Value:    value,
		Message:  c.printer.Sprintf(key, args...),
	})
}

func (c *shapeCheck) fail(property string, value any, key string, args ...any) {
	c.add(entity.SeverityError, c.shape, property, value, key, args...)
}

func (c *shapeCheck) result() *entity.ValidationResult {
	return entity.NewValidationResult(c.violations)
}

// requiredPattern reports a missing value or a value not matching re.
func (c *shapeCheck) requiredPattern(property string, s *string, re *regexp.Regexp, missingKey, formatKey string) {
	switch {
	case !present(s):
		c.fail(property, nil, missingKey)
	case !re.MatchString(*s):
		c.fail(property, *s, formatKey)
	}
}

func (c *shapeCheck) requiredLength(property string, s *string, lo, hi int, missingKey, lengthKey string) {
	if !present(s) {
		c.fail(property, nil, missingKey)
		return
	}
	if n := utf8.RuneCountInString(*s); n < lo || n > hi {
		c.fail(property, *s, lengthKey)
	}
}

func (c *shapeCheck) required(property string, s *string, missingKey string) {
	if !present(s) {
		c.fail(property, nil, missingKey)
	}
}

// oneOf checks a present value against allowed; absent values pass.
func (c *shapeCheck) oneOf(property string, s *string, allowed []string, key string) {
	if !present(s) {
		return
	}
	if !contains(allowed, *s) {
		c.fail(property, *s, key, joined(allowed))
	}
}

// optionalRange checks a present number against [lo, hi]; zero is a present value.
func (c *shapeCheck) optionalRange(property string, f *float64, lo, hi float64, key string) {
	if f == nil {
		return
	}
	if *f < lo || *f > hi {
		c.fail(property, *f, key)
	}
}

// requiredRange treats zero as missing, then checks [lo, hi] or (lo, hi]
// when exclusiveLow is set.
func (c *shapeCheck) requiredRange(property string, f *float64, lo, hi float64, exclusiveLow bool, missingKey, rangeKey string) {
	if !truthy(f) {
		c.fail(property, nil, missingKey)
		return
	}
	below := *f < lo
	if exclusiveLow {
		below = *f <= lo
	}
	if below || *f > hi {
		c.fail(property, *f, rangeKey)
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func truthy(f *float64) bool {
	return f != nil && *f != 0 && !math.IsNaN(*f)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Validate dispatches rec to the validator of its type. Kind is only used to
// reject a record of the wrong type.
func (v *Validator) Validate(kind entity.Kind, rec any) (*entity.ValidationResult, error) {
	const op = "shacl.Validator.Validate"

	switch r := rec.(type) {
	case *entity.Shipper:
		if kind == entity.KindShipper {
			return v.ValidateShipper(r), nil
		}
	case *entity.Booking:
		if kind == entity.KindBooking {
			return v.ValidateBooking(r), nil
		}
	case *entity.Prediction:
		if kind == entity.KindPrediction {
			return v.ValidatePrediction(r), nil
		}
	case *entity.Route:
		if kind == entity.KindRoute {
			return v.ValidateRoute(r), nil
		}
	}
	return nil, fmt.Errorf("%s: %w: %T as %s", op, entity.ErrUnknownKind, rec, kind)
}
