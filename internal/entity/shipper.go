package entity

type Shipper struct {
	ShipperID        *string  `json:"shipperId,omitempty"        yaml:"shipperId,omitempty"`
	ShipperName      *string  `json:"shipperName,omitempty"      yaml:"shipperName,omitempty"`
	BusinessType     *string  `json:"businessType,omitempty"     yaml:"businessType,omitempty"`
	AvgMonthlyVolume *float64 `json:"avgMonthlyVolume,omitempty" yaml:"avgMonthlyVolume,omitempty"`
	BookingFrequency *float64 `json:"bookingFrequency,omitempty" yaml:"bookingFrequency,omitempty"`
	ChurnRisk        *float64 `json:"churnRisk,omitempty"        yaml:"churnRisk,omitempty"`
	CustomerGrade    *string  `json:"customerGrade,omitempty"    yaml:"customerGrade,omitempty"`
}

func (s *Shipper) SubjectKey() string {
	if s == nil {
		return ""
	}
	return deref(s.ShipperID)
}
