package amadeus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/skylinesaver/flight-price-optimizer/internal/domain"
)

// Messages surfaced when the error body does not carry a detail.
const (
	// MsgUnknownErrorDetail replaces a "detail" that is absent or null.
	// An empty string is passed through as-is.
	MsgUnknownErrorDetail = "unknown error detail"
	MsgUnexpectedError    = "unexpected error"
	MsgNoErrorDetails     = "no error details available"
)

// payloadKind tags the shape of an error response body.
type payloadKind int

const (
	// payloadAbsent: no body at all (empty, whitespace or JSON null).
	payloadAbsent payloadKind = iota
	// payloadUnstructured: a JSON object without a usable "errors" list.
	payloadUnstructured
	// payloadDetailed: a non-empty "errors" list; detail comes from its first entry.
	payloadDetailed
)

type errorPayload struct {
	kind   payloadKind
	detail string
}

// parseErrorPayload decodes an error body into one of the payload kinds.
// Any shape it cannot interpret is returned as an error.
func parseErrorPayload(body []byte) (errorPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || isJSONNull(trimmed) {
		return errorPayload{kind: payloadAbsent}, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return errorPayload{}, fmt.Errorf("decode error body: %w", err)
	}

	rawErrors, ok := top["errors"]
	if !ok || isJSONNull(rawErrors) {
		return errorPayload{kind: payloadUnstructured}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawErrors, &entries); err != nil {
		return errorPayload{}, fmt.Errorf("decode errors list: %w", err)
	}
	if len(entries) == 0 {
		return errorPayload{kind: payloadUnstructured}, nil
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(entries[0], &first); err != nil {
		return errorPayload{}, fmt.Errorf("decode first error entry: %w", err)
	}

	detail := MsgUnknownErrorDetail
	if rawDetail, ok := first["detail"]; ok && !isJSONNull(rawDetail) {
		if err := json.Unmarshal(rawDetail, &detail); err != nil {
			return errorPayload{}, fmt.Errorf("decode error detail: %w", err)
		}
	}

	return errorPayload{kind: payloadDetailed, detail: detail}, nil
}

// parsePayload is swapped in tests to exercise the panic guard.
var parsePayload = parseErrorPayload

// classifyError turns a non-2xx response into *domain.APIError, or into
// *domain.ClassificationFailure when the body cannot be interpreted.
// It never panics.
func classifyError(statusCode int, body []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewClassificationFailure(fmt.Sprintf("%v", r))
		}
	}()

	payload, perr := parsePayload(body)
	if perr != nil {
		return domain.NewClassificationFailure(perr.Error())
	}

	switch payload.kind {
	case payloadDetailed:
		return domain.NewAPIError(statusCode, payload.detail)
	case payloadUnstructured:
		return domain.NewAPIError(statusCode, MsgUnexpectedError)
	default:
		return domain.NewAPIError(statusCode, MsgNoErrorDetails)
	}
}

func isJSONNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
