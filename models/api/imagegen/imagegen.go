package imagegenapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type Mode string

const (
	ModeGenerated   Mode = "generated"
	ModePlaceholder Mode = "placeholder"
)

type GenerateRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
}

func (r GenerateRequest) Validate() error {
	if len(strings.TrimSpace(r.Prompt)) == 0 {
		return errors.New("Prompt is required")
	}
	if r.Width < 0 || r.Height < 0 || r.Width > 2048 || r.Height > 2048 {
		return errors.New("Width and height must be between 0 and 2048")
	}
	if r.Steps < 0 || r.Steps > 150 {
		return errors.New("Steps must be between 0 and 150")
	}
	return nil
}

type GenerateResponse struct {
	Success bool        `json:"success"`
	Mode    Mode        `json:"mode"`
	Data    interface{} `json:"data"`
}

type GeneratedData struct {
	Image  string `json:"image"` // base64 png
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type PlaceholderData struct {
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
	Message  string `json:"message"`
}

// Txt2ImgRequest Stable Diffusion WebUI /sdapi/v1/txt2img
type Txt2ImgRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
}

type Txt2ImgResponse struct {
	Images []string `json:"images"`
}
