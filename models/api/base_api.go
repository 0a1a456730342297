package apimodels

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrorResponse тело ответа при ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

func NewErrorWithDetails(message, details string) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: details,
	}
}

// FlexID accepts both JSON strings and numbers, challenge ids come as either.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return errors.New("id must be a string or a number")
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

// MarshalJSON keeps integer ids numeric on the wire.
func (f FlexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(f), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(f) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}
