package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fit-engine/internal/fit"
	"fit-engine/internal/metrics"
	"fit-engine/internal/model"
	"fit-engine/internal/reportcache"
)

type Engine struct {
	cache *reportcache.Cache
	log   *zap.Logger
}

type Option func(*Engine)

func WithCache(c *reportcache.Cache) Option {
	return func(e *Engine) { e.cache = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process evaluates a request and wraps the report with metadata and input
// diagnostics. It never fails; questionable input only produces messages.
func (e *Engine) Process(req *model.EvaluationRequest) *model.EvaluationResponse {
	start := time.Now()

	prefs := model.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	var messages []model.EvaluationMessage
	mode := req.Mode
	switch {
	case mode == "":
		mode = model.ModeBasic
	case !mode.Valid():
		messages = append(messages, model.EvaluationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeUnknownMode,
			Message: fmt.Sprintf("Unknown mode %q, evaluated as basic", req.Mode),
		})
		mode = model.ModeBasic
	}
	messages = append(messages, Diagnose(req.Garment, req.Body)...)
	for i := range messages {
		messages[i].ID = i
	}

	var (
		report model.FitReport
		cached bool
	)
	key, cacheable := reportcache.Key(req.Garment, req.Body, prefs, mode)
	if cacheable && e.cache != nil {
		report, cached = e.cache.Get(key)
		if cached {
			metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		} else {
			metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		}
	}
	if !cached {
		report = fit.Evaluate(req.Garment, req.Body, prefs, mode)
		if cacheable {
			e.cache.Add(key, report)
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	metrics.EvaluationsTotal.WithLabelValues(string(mode), string(report.Overall)).Inc()
	metrics.EvaluationDuration.WithLabelValues(string(mode)).Observe(elapsed.Seconds())

	if messages == nil {
		messages = []model.EvaluationMessage{}
	}

	resp := &model.EvaluationResponse{
		EvaluationMetadata: model.EvaluationMetadata{
			EvaluationID:          uuid.New().String(),
			EvaluationStartedAt:   now.Add(-elapsed).Format(time.RFC3339Nano),
			EvaluationCompletedAt: now.Format(time.RFC3339Nano),
			EvaluationDurationMs:  elapsed.Milliseconds(),
			Mode:                  mode,
			Cached:                cached,
		},
		Messages: messages,
		Report:   report,
	}

	e.log.Debug("fit evaluated",
		zap.String("evaluation_id", resp.EvaluationMetadata.EvaluationID),
		zap.String("category", string(req.Garment.Category)),
		zap.String("mode", string(mode)),
		zap.String("overall", string(report.Overall)),
		zap.Bool("cached", cached),
		zap.Int("messages", len(messages)),
		zap.Duration("duration", elapsed),
	)

	return resp
}
