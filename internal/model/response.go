package model

type EvaluationResponse struct {
	EvaluationMetadata EvaluationMetadata  `json:"evaluation_metadata"`
	Messages           []EvaluationMessage `json:"messages"`
	Report             FitReport           `json:"report"`
}

type EvaluationMetadata struct {
	EvaluationID          string `json:"evaluation_id"`
	EvaluationStartedAt   string `json:"evaluation_started_at"`
	EvaluationCompletedAt string `json:"evaluation_completed_at"`
	EvaluationDurationMs  int64  `json:"evaluation_duration_ms"`
	Mode                  Mode   `json:"mode"`
	Cached                bool   `json:"cached"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
