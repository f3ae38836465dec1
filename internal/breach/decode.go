package breach

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Goofygiraffe06/breachcheck/internal/models"
)

var errNullDocument = errors.New("response is JSON null")

// decodeResponse reads a reply body leniently. Any well-formed JSON document
// other than null is accepted: fields are taken from it only when it is an
// object, and mistyped fields are coerced rather than rejected.
func decodeResponse(body []byte) (models.CheckResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return models.CheckResponse{}, err
	}
	if dec.More() {
		return models.CheckResponse{}, errors.New("trailing data after JSON document")
	}
	if doc == nil {
		return models.CheckResponse{}, errNullDocument
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return models.CheckResponse{}, nil
	}
	return models.CheckResponse{
		BreachCount: breachCount(obj["breach_count"]),
		Message:     text(obj["message"]),
		Status:      text(obj["status"]),
	}, nil
}

// breachCount accepts numbers and numeric strings. Anything that is not a
// positive number counts as zero; a positive fraction rounds up so it still
// reads as breached.
func breachCount(v interface{}) int {
	var f float64
	switch x := v.(type) {
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		f = n
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Ceil(f))
}

// text renders a field for display. Empty-ish values (false, null, 0, "")
// yield "" so callers fall back to their default.
func text(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			return ""
		}
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return ""
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
