package docgenapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type GenerateRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Style    string `json:"style"` // необязательно: JSDoc, Google, NumPy...
}

func (r GenerateRequest) Validate() error {
	if len(strings.TrimSpace(r.Code)) == 0 {
		return errors.New("Code is required")
	}
	if len(strings.TrimSpace(r.Language)) == 0 {
		return errors.New("Language is required")
	}
	return nil
}

type GenerateResponse struct {
	Documentation string `json:"documentation"`
}

type ExportRequest struct {
	Documentation string `json:"documentation"`
	Title         string `json:"title"`
}

func (r ExportRequest) Validate() error {
	if len(strings.TrimSpace(r.Documentation)) == 0 {
		return errors.New("Documentation is required")
	}
	return nil
}
