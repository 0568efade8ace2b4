package handler

import (
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"fit-engine/internal/engine"
	"fit-engine/internal/model"
	"fit-engine/internal/partner"
	"fit-engine/internal/reportcache"
)

const testKey = "partner-key"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cache, err := reportcache.New(16)
	require.NoError(t, err)
	eng := engine.New(engine.WithCache(cache), engine.WithLogger(zaptest.NewLogger(t)))
	return New(eng, partner.NewDecoder(testKey), zaptest.NewLogger(t))
}

func do(h *Handler, method, path string, body []byte) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBody(body)
	}
	h.Handle(&ctx)
	return &ctx
}

const evaluateBody = `{
	"garment": {
		"name": "Test T-Shirt",
		"category": "tshirt",
		"intended_fit": "regular",
		"measurements": {"chest_flat_cm": 50, "waist_flat_cm": 45}
	},
	"body": {"chest_bust_cm": 90, "waist_cm": 75, "high_hip_cm": 95, "shoulder_width_cm": 45},
	"mode": "basic"
}`

func TestEvaluate(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(h, fasthttp.MethodPost, PathEvaluate, []byte(evaluateBody))
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp model.EvaluationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OverallTight, resp.Report.Overall)
	assert.Equal(t, "Basic", resp.Report.Mode)
	require.NotNil(t, resp.Report.SizeMatchPercent)
	assert.Equal(t, 25, *resp.Report.SizeMatchPercent)
	assert.Len(t, resp.Report.Zones, 4)
	assert.False(t, resp.EvaluationMetadata.Cached)

	ctx = do(h, fasthttp.MethodPost, PathEvaluate, []byte(evaluateBody))
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	var again model.EvaluationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &again))
	assert.True(t, again.EvaluationMetadata.Cached)
	assert.Equal(t, resp.Report, again.Report)
	assert.NotEqual(t, resp.EvaluationMetadata.EvaluationID, again.EvaluationMetadata.EvaluationID)
}

func TestEvaluateBadRequests(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"garment": `},
		{"missing category", `{"garment": {"intended_fit": "regular"}, "body": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(h, fasthttp.MethodPost, PathEvaluate, []byte(tt.body))
			require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())

			var errResp model.ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
			assert.Equal(t, http.StatusBadRequest, errResp.Status)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestRouting(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(h, fasthttp.MethodGet, "/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(h, fasthttp.MethodGet, PathEvaluate, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())
	assert.Equal(t, fasthttp.MethodPost, string(ctx.Response.Header.Peek("Allow")))

	ctx = do(h, fasthttp.MethodPost, PathHealth, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())

	ctx = do(h, fasthttp.MethodGet, PathHealth, nil)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(h, fasthttp.MethodPost, PathEvaluate, []byte(evaluateBody))

	ctx := do(h, fasthttp.MethodGet, PathMetrics, nil)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "fit_evaluations_total")
}

func TestImportGarment(t *testing.T) {
	h := newTestHandler(t)

	p := partner.Payload{
		V:            partner.PayloadVersion,
		Brand:        "Northwind",
		SKU:          "NW-JEAN-7",
		Name:         "Straight Jeans",
		Category:     "jeans",
		IntendedFit:  "regular",
		Measurements: partner.Measurements{WaistFlatCm: model.Cm(40), HipFlatCm: model.Cm(50)},
	}
	sig, err := partner.Sign(testKey, p)
	require.NoError(t, err)
	p.Sig = sig
	body, err := json.Marshal(p)
	require.NoError(t, err)

	ctx := do(h, fasthttp.MethodPost, PathImport, body)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var g model.Garment
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &g))
	assert.Equal(t, model.CategoryJeans, g.Category)
	assert.Equal(t, "NW-JEAN-7", g.SKU)
	require.NotNil(t, g.Measurements.HipFlatCm)
	assert.Equal(t, 50.0, *g.Measurements.HipFlatCm)
}

func TestImportGarmentRejected(t *testing.T) {
	h := newTestHandler(t)

	p := partner.Payload{
		V:            partner.PayloadVersion,
		Name:         "Straight Jeans",
		Category:     "jeans",
		IntendedFit:  "regular",
		Measurements: partner.Measurements{WaistFlatCm: model.Cm(40)},
		Sig:          "deadbeef",
	}
	body, err := json.Marshal(p)
	require.NoError(t, err)

	ctx := do(h, fasthttp.MethodPost, PathImport, body)
	assert.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "signature")

	ctx = do(h, fasthttp.MethodPost, PathImport, []byte(`{"v": 2}`))
	assert.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "invalid partner payload")
}

func TestHealthAndMetricsLogAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := New(engine.New(), partner.NewDecoder(""), zap.New(core))

	do(h, fasthttp.MethodGet, PathHealth, nil)
	do(h, fasthttp.MethodGet, PathMetrics, nil)
	assert.Equal(t, 0, logs.Len())

	do(h, fasthttp.MethodPost, PathEvaluate, []byte(evaluateBody))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, PathEvaluate, entry.ContextMap()["path"])
}
