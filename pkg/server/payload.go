package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-uekit/pkg/panels"
)

const maxBodyBytes = 1 << 20

// parseValues reads panel values from a JSON object body or form values.
func parseValues(w http.ResponseWriter, r *http.Request) (panels.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return decodeJSONValues(r.Body)
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return formValues(r.Form), nil
}

func decodeJSONValues(body io.Reader) (panels.Values, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		if err == io.EOF {
			return panels.Values{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	values := make(panels.Values, len(payload))
	for key, raw := range payload {
		value, err := scalarText(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidPayload, key, err)
		}
		values[key] = value
	}
	return values, nil
}

func scalarText(raw any) (string, error) {
	switch typed := raw.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case json.Number:
		return typed.String(), nil
	case bool:
		return strconv.FormatBool(typed), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}

// formValues keeps the first value of every key.
func formValues(form url.Values) panels.Values {
	values := make(panels.Values, len(form))
	for key, entries := range form {
		if len(entries) == 0 {
			continue
		}
		values[key] = entries[0]
	}
	return values
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Accept")), "application/json")
}
