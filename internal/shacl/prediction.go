package shacl

import (
	"regexp"

	"freightqa/internal/entity"
)

const _highConfidenceThreshold = 0.85

var modelVersionPattern = regexp.MustCompile(`^v[0-9]+\.[0-9]+\.[0-9]+$`)

func (v *Validator) ValidatePrediction(rec *entity.Prediction) *entity.ValidationResult {
	if rec == nil {
		rec = &entity.Prediction{}
	}
	c := v.check(ShapePrediction)

	c.requiredDate("predictedDate", rec.PredictedDate, msgPredictedDateRequired, msgPredictedDateFormat)

	// Zero is a legitimate confidence, so only absence counts as missing.
	if rec.Confidence == nil {
		c.fail("confidence", nil, msgConfidenceRequired)
	} else if *rec.Confidence < 0 || *rec.Confidence > 1 {
		c.fail("confidence", *rec.Confidence, msgConfidenceRange)
	}

	c.optionalRange("predictedVolume", rec.PredictedVolume, 1, 10000, msgPredictedVolumeRange)
	c.requiredPattern("modelVersion", rec.ModelVersion, modelVersionPattern, msgModelVersionRequired, msgModelVersionFormat)
	c.requiredDate("predictionDate", rec.PredictionDate, msgPredictionDateRequired, msgPredictionDateFormat)
	c.required("shipperId", rec.ShipperID, msgPredictionShipperRequired)

	if present(rec.PredictedDate) && present(rec.PredictionDate) {
		predicted, okPredicted := ParseDate(*rec.PredictedDate)
		created, okCreated := ParseDate(*rec.PredictionDate)
		if okPredicted && okCreated && !predicted.After(created) {
			c.fail("", nil, msgPredictedAfterCreated)
		}
	}

	if rec.Confidence != nil && *rec.Confidence >= _highConfidenceThreshold {
		c.add(entity.SeverityInfo, RuleHighConfidencePrediction, "", nil, msgHighConfidencePrediction)
	}

	return c.result()
}
