package partner

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"fit-engine/internal/model"
)

var (
	ErrInvalidPayload   = errors.New("invalid partner payload")
	ErrInvalidSignature = errors.New("invalid partner signature")
)

var payloadSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	categories := make([]interface{}, len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = string(c)
	}
	nonNegative := map[string]interface{}{"type": "number", "minimum": 0}

	schema := map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"v", "brand", "sku", "name", "category", "intendedFit", "measurements"},
		"properties": map[string]interface{}{
			"v":           map[string]interface{}{"enum": []interface{}{PayloadVersion}},
			"brand":       map[string]interface{}{"type": "string"},
			"sku":         map[string]interface{}{"type": "string"},
			"name":        map[string]interface{}{"type": "string", "minLength": 1},
			"category":    map[string]interface{}{"type": "string", "enum": categories},
			"intendedFit": map[string]interface{}{"type": "string"},
			"measurements": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": nonNegative,
			},
			"fabric": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"stretchPercent"},
				"properties": map[string]interface{}{
					"stretchPercent": nonNegative,
					"weightGsm":      nonNegative,
				},
			},
			"sig": map[string]interface{}{"type": "string"},
		},
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("partner payload schema: %v", err))
	}
	return s
}

// Decoder validates partner payloads and converts them into garments.
type Decoder struct {
	signingKey string
}

// NewDecoder returns a decoder. With an empty signing key, signatures are
// not checked.
func NewDecoder(signingKey string) *Decoder {
	return &Decoder{signingKey: signingKey}
}

func (d *Decoder) Decode(data []byte) (*model.Garment, error) {
	result, err := payloadSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(errs, "; "))
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	category := model.Category(p.Category)
	if category.IsTop() && !p.Measurements.hasTopData() {
		return nil, fmt.Errorf("%w: %s needs a chest or waist measurement", ErrInvalidPayload, category.DisplayName())
	}
	if !category.IsTop() && !p.Measurements.hasBottomData() {
		return nil, fmt.Errorf("%w: %s needs a waist or hip measurement", ErrInvalidPayload, category.DisplayName())
	}

	if err := d.verify(p); err != nil {
		return nil, err
	}

	g := p.Garment()
	return &g, nil
}

// verify accepts unsigned payloads; signed ones must match when a key is set.
func (d *Decoder) verify(p Payload) error {
	if p.Sig == "" || d.signingKey == "" {
		return nil
	}
	want, err := Sign(d.signingKey, p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(p.Sig))) {
		return fmt.Errorf("%w: signature mismatch for sku %q", ErrInvalidSignature, p.SKU)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 partners attach as "sig". It covers the
// JSON encoding of the whole payload with sig left empty, so measurements
// and fabric are protected along with the identifying fields.
func Sign(key string, p Payload) (string, error) {
	p.Sig = ""
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload for signing: %w", err)
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(b)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
