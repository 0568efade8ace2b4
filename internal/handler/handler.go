package handler

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"fit-engine/internal/engine"
	"fit-engine/internal/metrics"
	"fit-engine/internal/model"
	"fit-engine/internal/partner"
)

const (
	PathEvaluate = "/v1/fit/evaluate"
	PathImport   = "/v1/garments/import"
	PathHealth   = "/healthz"
	PathMetrics  = "/metrics"
)

type Handler struct {
	engine  *engine.Engine
	decoder *partner.Decoder
	log     *zap.Logger
	metrics fasthttp.RequestHandler
}

func New(eng *engine.Engine, dec *partner.Decoder, log *zap.Logger) *Handler {
	return &Handler{
		engine:  eng,
		decoder: dec,
		log:     log,
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case PathEvaluate:
		if h.allow(ctx, fasthttp.MethodPost) {
			h.evaluate(ctx)
		}
	case PathImport:
		if h.allow(ctx, fasthttp.MethodPost) {
			h.importGarment(ctx)
		}
	case PathHealth:
		if h.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, http.StatusOK, map[string]string{"status": "ok"})
		}
	case PathMetrics:
		if h.allow(ctx, fasthttp.MethodGet) {
			h.metrics(ctx)
		}
	default:
		writeError(ctx, http.StatusNotFound, "Not found: "+path)
	}

	logf := h.log.Info
	if path == PathMetrics || path == PathHealth {
		logf = h.log.Debug
	}
	logf("request",
		zap.String("method", string(ctx.Method())),
		zap.String("path", path),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func (h *Handler) evaluate(ctx *fasthttp.RequestCtx) {
	var req model.EvaluationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Garment.Category == "" {
		writeError(ctx, http.StatusBadRequest, "Garment category is required")
		return
	}

	resp := h.engine.Process(&req)
	writeJSON(ctx, http.StatusOK, resp)
}

func (h *Handler) importGarment(ctx *fasthttp.RequestCtx) {
	g, err := h.decoder.Decode(ctx.PostBody())
	switch {
	case errors.Is(err, partner.ErrInvalidSignature):
		metrics.PartnerImports.WithLabelValues(metrics.ImportInvalidSignature).Inc()
		h.log.Warn("partner payload rejected", zap.Error(err))
		writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		metrics.PartnerImports.WithLabelValues(metrics.ImportInvalidPayload).Inc()
		writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		metrics.PartnerImports.WithLabelValues(metrics.ImportAccepted).Inc()
		writeJSON(ctx, http.StatusOK, g)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
