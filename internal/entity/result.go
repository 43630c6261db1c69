package entity

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type (
	Violation struct {
		Severity Severity `json:"severity"           yaml:"severity"`
		Shape    string   `json:"shape"              yaml:"shape"`
		Property string   `json:"property,omitempty" yaml:"property,omitempty"`
		Value    any      `json:"value,omitempty"    yaml:"value,omitempty"`
		Message  string   `json:"message"            yaml:"message"`
		Path     string   `json:"path,omitempty"     yaml:"path,omitempty"`
	}

	// Summary counts are display oriented: info notes count as passed
	// checks, warnings count as failed ones.
	Summary struct {
		TotalChecks int `json:"totalChecks" yaml:"totalChecks"`
		Passed      int `json:"passed"      yaml:"passed"`
		Failed      int `json:"failed"      yaml:"failed"`
	}

	ValidationResult struct {
		IsValid    bool        `json:"isValid"    yaml:"isValid"`
		Violations []Violation `json:"violations" yaml:"violations"`
		Summary    Summary     `json:"summary"    yaml:"summary"`
	}

	BatchRequest struct {
		Shippers    []*Shipper    `json:"shippers,omitempty"    yaml:"shippers,omitempty"`
		Bookings    []*Booking    `json:"bookings,omitempty"    yaml:"bookings,omitempty"`
		Predictions []*Prediction `json:"predictions,omitempty" yaml:"predictions,omitempty"`
		Routes      []*Route      `json:"routes,omitempty"      yaml:"routes,omitempty"`
	}

	BatchResult struct {
		Shippers     []*ValidationResult `json:"shippers"     yaml:"shippers"`
		Bookings     []*ValidationResult `json:"bookings"     yaml:"bookings"`
		Predictions  []*ValidationResult `json:"predictions"  yaml:"predictions"`
		Routes       []*ValidationResult `json:"routes"       yaml:"routes"`
		OverallValid bool                `json:"overallValid" yaml:"overallValid"`
	}
)

// NewValidationResult builds a result from violations in evaluation order.
func NewValidationResult(violations []Violation) *ValidationResult {
	if violations == nil {
		violations = []Violation{}
	}

	var errs, warnings, infos int
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}

	return &ValidationResult{
		IsValid:    errs == 0,
		Violations: violations,
		Summary: Summary{
			TotalChecks: len(violations),
			Passed:      infos,
			Failed:      errs + warnings,
		},
	}
}

func (r *ValidationResult) Count(severity Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, v := range r.Violations {
		if v.Severity == severity {
			n++
		}
	}
	return n
}

// Len returns the number of records in the batch.
func (b *BatchRequest) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Shippers) + len(b.Bookings) + len(b.Predictions) + len(b.Routes)
}

// Each calls fn for every result in shipper, booking, prediction, route order.
func (b *BatchResult) Each(fn func(kind Kind, index int, result *ValidationResult)) {
	if b == nil {
		return
	}
	for i, r := range b.Shippers {
		fn(KindShipper, i, r)
	}
	for i, r := range b.Bookings {
		fn(KindBooking, i, r)
	}
	for i, r := range b.Predictions {
		fn(KindPrediction, i, r)
	}
	for i, r := range b.Routes {
		fn(KindRoute, i, r)
	}
}
