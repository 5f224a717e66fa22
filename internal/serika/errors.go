package serika

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// a session-scoped operation was dispatched with no stored session token
	ErrNoSessionToken = errors.New("no session token stored, log in first")

	// a generation operation was dispatched with no stored API key
	ErrNoAPIKey = errors.New("no API key stored, set one in the playground first")
)

// APIError carries a backend-reported failure through to the caller
// unchanged: same status, same message, same error code.
type APIError struct {
	Status  int
	Code    string
	Type    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus reports the backend's original HTTP status.
func (e *APIError) HTTPStatus() int {
	return e.Status
}

// ErrorCode reports the backend's error code, if it sent one.
func (e *APIError) ErrorCode() string {
	return e.Code
}

// the backend answers in one of two shapes:
// {"error": {"message": ..., "type": ..., "code": ...}} or {"msg": ...}
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
	Msg string `json:"msg"`
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var envelope errorEnvelope

	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Error != nil:
			apiErr.Message = envelope.Error.Message
			apiErr.Type = envelope.Error.Type

			if envelope.Error.Code != nil {
				apiErr.Code = fmt.Sprintf("%v", envelope.Error.Code)
			}
		case envelope.Msg != "":
			apiErr.Message = envelope.Msg
		}
	}

	if apiErr.Message == "" {
		// arbitrary body shape - pass the raw text through
		apiErr.Message = string(body)
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
