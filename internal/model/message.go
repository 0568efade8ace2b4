package model

// EvaluationMessage is a non-fatal diagnostic about the inputs of an
// evaluation. The report is produced regardless.
type EvaluationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Zone    Zone   `json:"zone,omitempty"`
}

const LevelWarning = "WARNING"

const (
	CodeUnknownMode               = "UNKNOWN_MODE"
	CodeUnknownCategory           = "UNKNOWN_CATEGORY"
	CodeUnknownFitStyle           = "UNKNOWN_FIT_STYLE"
	CodeMissingGarmentMeasurement = "MISSING_GARMENT_MEASUREMENT"
	CodeMissingBodyMeasurement    = "MISSING_BODY_MEASUREMENT"
)
