package model

type EvaluationRequest struct {
	Garment     Garment          `json:"garment"`
	Body        BodyMeasurements `json:"body"`
	Preferences *FitPreferences  `json:"preferences,omitempty"`
	Mode        Mode             `json:"mode,omitempty"`
}
