package ollamamodels

import (
	"strings"

	"github.com/pkg/errors"
)

type ModelsResponse struct {
	Models []ModelShort `json:"models"`
}

type ModelShort struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modifiedAt"`
}

func (r ShowRequest) Validate() error {
	if len(strings.TrimSpace(r.Name)) == 0 {
		return errors.New("Model name is required")
	}
	return nil
}

type HealthResponse struct {
	Status string `json:"status"`
	Ollama string `json:"ollama"`
}
