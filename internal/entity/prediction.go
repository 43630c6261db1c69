package entity

type Prediction struct {
	PredictedDate   *string  `json:"predictedDate,omitempty"   yaml:"predictedDate,omitempty"`
	Confidence      *float64 `json:"confidence,omitempty"      yaml:"confidence,omitempty"`
	PredictedVolume *float64 `json:"predictedVolume,omitempty" yaml:"predictedVolume,omitempty"`
	ModelVersion    *string  `json:"modelVersion,omitempty"    yaml:"modelVersion,omitempty"`
	PredictionDate  *string  `json:"predictionDate,omitempty"  yaml:"predictionDate,omitempty"`
	ShipperID       *string  `json:"shipperId,omitempty"       yaml:"shipperId,omitempty"`
}

// SubjectKey of a prediction is the shipper it forecasts for.
func (p *Prediction) SubjectKey() string {
	if p == nil {
		return ""
	}
	return deref(p.ShipperID)
}
