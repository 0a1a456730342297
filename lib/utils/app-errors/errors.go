package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUpstreamUnavailable
	KindUpstreamTimeout
	KindUpstreamError
	KindTranscriptionFailed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstreamTimeout:
		return "upstream_timeout"
	case KindUpstreamError:
		return "upstream_error"
	case KindTranscriptionFailed:
		return "transcription_failed"
	}
	return "internal"
}

// Error классифицированная ошибка. Message можно показывать клиенту,
// Details подсказка для оператора
type Error struct {
	Kind    Kind
	Message string
	Details string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Cause() error {
	return e.cause
}

func New(kind Kind, message, details string, cause error) error {
	return &Error{
		Kind:    kind,
		Message: message,
		Details: details,
		cause:   cause,
	}
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, cause error) error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &Error{Kind: KindInternal, Message: message, Details: details, cause: cause}
}

// As первая классифицированная ошибка в цепочке
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
