package nlptocodeapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type GenerateRequest struct {
	Description string `json:"description"`
	Language    string `json:"language"`
}

func (r GenerateRequest) Validate() error {
	if len(strings.TrimSpace(r.Description)) == 0 {
		return errors.New("Description is required")
	}
	if len(strings.TrimSpace(r.Language)) == 0 {
		return errors.New("Language is required")
	}
	return nil
}

type TestsRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	Framework string `json:"framework"`
}

func (r TestsRequest) Validate() error {
	return validateCode(r.Code, r.Language)
}

type ImproveRequest struct {
	Code         string `json:"code"`
	Language     string `json:"language"`
	Requirements string `json:"requirements"`
}

func (r ImproveRequest) Validate() error {
	return validateCode(r.Code, r.Language)
}

func validateCode(code, language string) error {
	if len(strings.TrimSpace(code)) == 0 {
		return errors.New("Code is required")
	}
	if len(strings.TrimSpace(language)) == 0 {
		return errors.New("Language is required")
	}
	return nil
}

type GenerateResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

type TestsResponse struct {
	Success  bool   `json:"success"`
	TestCode string `json:"testCode"`
}

type ImproveResponse struct {
	Success      bool   `json:"success"`
	ImprovedCode string `json:"improvedCode"`
}
