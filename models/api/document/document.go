package documentapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type UploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"documentId"`
}

type AnalyzeRequest struct {
	DocumentID string `json:"documentId"`
}

func (r AnalyzeRequest) Validate() error {
	if len(strings.TrimSpace(r.DocumentID)) == 0 {
		return errors.New("Invalid document ID")
	}
	return nil
}

type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

type QuestionRequest struct {
	DocumentID string `json:"documentId"`
	Question   string `json:"question"`
}

func (r QuestionRequest) Validate() error {
	if len(strings.TrimSpace(r.DocumentID)) == 0 {
		return errors.New("Invalid document ID")
	}
	if len(strings.TrimSpace(r.Question)) == 0 {
		return errors.New("Question is required")
	}
	return nil
}

type QuestionResponse struct {
	Answer string `json:"answer"`
}

type DocumentInfo struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"originalFilename"`
	ContentLength    int       `json:"contentLength"`
	UploadedAt       time.Time `json:"uploadedAt"`
}
