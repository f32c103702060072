package flightapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrTransport means no HTTP response was received.
	ErrTransport = errors.New("flight api unreachable")
	ErrNotFound  = errors.New("not found")
	ErrUpstream  = errors.New("flight api error")
	ErrDecode    = errors.New("unexpected flight api response")
)

// StatusError is a non-success response. Detail is the FastAPI "detail"
// message when present, otherwise the trimmed body.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("flight api returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("flight api returned %d: %s", e.StatusCode, e.Detail)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Message is the text shown to the user.
func (e *StatusError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.StatusCode)
}

func newStatusError(status int, body []byte) *StatusError {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	detail := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			detail = s
		} else {
			// validation errors arrive as a list of objects
			detail = validationDetail(payload.Detail)
		}
	}
	return &StatusError{StatusCode: status, Detail: detail}
}

func validationDetail(raw json.RawMessage) string {
	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return string(raw)
	}
	msgs := make([]string, 0, len(items))
	for _, it := range items {
		if len(it.Loc) > 0 {
			msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
			continue
		}
		msgs = append(msgs, it.Msg)
	}
	return strings.Join(msgs, "; ")
}

// UserMessage returns a user-facing description of err.
func UserMessage(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return se.Message()
	case errors.Is(err, ErrTransport):
		return "Could not reach the flight service. Please try again."
	case errors.Is(err, ErrDecode):
		return "The flight service returned an unexpected response."
	}
	return "Something went wrong."
}
