package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure. Every failure crossing the client
// boundary carries exactly one Kind; there is no catch-all.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
	KindTimeout      Kind = "timeout"
	KindCanceled     Kind = "canceled"
	KindParse        Kind = "parse"
)

// Error is the single failure shape produced by Client. StatusCode is 0 for
// failures without an HTTP response (network, timeout, canceled).
type Error struct {
	Kind       Kind
	StatusCode int
	StatusText string
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s (%d %s)", e.Message, e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("api: %s (%s)", e.Message, e.Kind)
}

// AsError unwraps err into *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func isKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }
func IsNotFound(err error) bool     { return isKind(err, KindNotFound) }
func IsTimeout(err error) bool      { return isKind(err, KindTimeout) }
func IsCanceled(err error) bool     { return isKind(err, KindCanceled) }

// statusKind maps an HTTP status to its Kind.
func statusKind(code int) Kind {
	switch {
	case code == http.StatusUnauthorized:
		return KindUnauthorized
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// errorBody is the error shape the backend returns; either field may carry
// the human-readable message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusError builds the Error for a non-2xx response, extracting a message
// from the JSON body on a best-effort basis.
func statusError(code int, statusText string, body []byte) *Error {
	msg := fmt.Sprintf("%d %s", code, statusText)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}
	return &Error{
		Kind:       statusKind(code),
		StatusCode: code,
		StatusText: statusText,
		Message:    msg,
		Body:       body,
	}
}
