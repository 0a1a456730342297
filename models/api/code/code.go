package codeapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type CodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Goal     string `json:"goal"`  // цель оптимизации, только для optimize
	Error    string `json:"error"` // текст ошибки, только для debug
}

func (r CodeRequest) Validate() error {
	if len(strings.TrimSpace(r.Code)) == 0 {
		return errors.New("Code is required")
	}
	if len(strings.TrimSpace(r.Language)) == 0 {
		return errors.New("Language is required")
	}
	return nil
}

type AnalysisResponse struct {
	Analysis       string `json:"analysis"`
	Model          string `json:"model"`
	ProcessingTime int64  `json:"processingTime"` // мс
}

type OptimizationResponse struct {
	Optimization   string `json:"optimization"`
	Model          string `json:"model"`
	ProcessingTime int64  `json:"processingTime"`
}

type DebuggingResponse struct {
	Debugging      string `json:"debugging"`
	Model          string `json:"model"`
	ProcessingTime int64  `json:"processingTime"`
}
