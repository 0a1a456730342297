package codechallengeapimodels

import (
	"strings"

	apimodels "devassist-backend/models/api"

	"github.com/pkg/errors"
)

type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

type Challenge struct {
	ID          apimodels.FlexID `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Difficulty  string           `json:"difficulty,omitempty"`
	Category    string           `json:"category,omitempty"`
	Examples    []Example        `json:"examples,omitempty"`
	Constraints []string         `json:"constraints,omitempty"`
}

type ChallengeShort struct {
	ID         apimodels.FlexID `json:"id"`
	Title      string           `json:"title"`
	Difficulty string           `json:"difficulty,omitempty"`
	Category   string           `json:"category,omitempty"`
}

type EvaluateRequest struct {
	Code        string           `json:"code"`
	ChallengeID apimodels.FlexID `json:"challengeId"`
	Language    string           `json:"language"`
}

func (r EvaluateRequest) Validate() error {
	if len(strings.TrimSpace(r.Code)) == 0 {
		return errors.New("Code is required")
	}
	if len(strings.TrimSpace(r.ChallengeID.String())) == 0 {
		return errors.New("Challenge ID is required")
	}
	return nil
}

type ChallengeRef struct {
	ID    apimodels.FlexID `json:"id"`
	Title string           `json:"title"`
}

type EvaluateResponse struct {
	Evaluation     string       `json:"evaluation"`
	Model          string       `json:"model"`
	ProcessingTime int64        `json:"processingTime"`
	Challenge      ChallengeRef `json:"challenge"`
}

type AnalyzeRequest struct {
	Code      string     `json:"code"`
	Language  string     `json:"language"`
	Challenge *Challenge `json:"challenge"`
}

func (r AnalyzeRequest) Validate() error {
	if len(strings.TrimSpace(r.Code)) == 0 {
		return errors.New("Code is required")
	}
	if r.Challenge == nil {
		return errors.New("Challenge is required")
	}
	if len(strings.TrimSpace(r.Challenge.ID.String())) == 0 {
		return errors.New("Challenge ID is required")
	}
	if len(strings.TrimSpace(r.Challenge.Title)) == 0 {
		return errors.New("Challenge title is required")
	}
	if len(strings.TrimSpace(r.Challenge.Description)) == 0 {
		return errors.New("Challenge description is required")
	}
	return nil
}

type AnalyzeResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Model          string `json:"model"`
	ProcessingTime int64  `json:"processingTime"`
}
