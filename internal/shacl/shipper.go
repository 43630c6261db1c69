package shacl

import (
	"regexp"

	"freightqa/internal/entity"
)

const (
	_vipVolumeThreshold = 500
	_churnRiskThreshold = 0.7
)

var (
	shipperIDPattern = regexp.MustCompile(`^SHP[0-9]{3,}$`)

	BusinessTypes  = []string{"Electronics", "Auto Parts", "Chemicals", "Textiles", "Food", "Machinery", "Furniture", "Other"}
	CustomerGrades = []string{"VIP", "GradeA", "GradeB", "GradeC"}
)

func (v *Validator) ValidateShipper(rec *entity.Shipper) *entity.ValidationResult {
	if rec == nil {
		rec = &entity.Shipper{}
	}
	c := v.check(ShapeShipper)

	c.requiredPattern("shipperId", rec.ShipperID, shipperIDPattern, msgShipperIDRequired, msgShipperIDFormat)
	c.requiredLength("shipperName", rec.ShipperName, 2, 200, msgShipperNameRequired, msgShipperNameLength)
	c.oneOf("businessType", rec.BusinessType, BusinessTypes, msgBusinessTypeEnum)
	c.optionalRange("avgMonthlyVolume", rec.AvgMonthlyVolume, 0, 100000, msgAvgMonthlyVolumeRange)
	c.optionalRange("bookingFrequency", rec.BookingFrequency, 0, 100, msgBookingFrequencyRange)
	c.optionalRange("churnRisk", rec.ChurnRisk, 0, 1, msgChurnRiskRange)
	c.oneOf("customerGrade", rec.CustomerGrade, CustomerGrades, msgCustomerGradeEnum)

	if truthy(rec.AvgMonthlyVolume) && *rec.AvgMonthlyVolume >= _vipVolumeThreshold &&
		(rec.CustomerGrade == nil || *rec.CustomerGrade != "VIP") {
		c.add(entity.SeverityWarning, RuleVIPShipper, "", nil, msgVIPShipperRule)
	}

	if truthy(rec.ChurnRisk) && *rec.ChurnRisk >= _churnRiskThreshold {
		c.add(entity.SeverityWarning, RuleChurnRiskShipper, "", nil, msgChurnRiskShipperRule)
	}

	return c.result()
}
