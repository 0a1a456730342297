package ollamamodels

// Структуры для работы с Ollama API
type GenerateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *Options `json:"options,omitempty"`
}

type Options struct {
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	TopK          int      `json:"top_k,omitempty"`
	NumPredict    int      `json:"num_predict,omitempty"`
	RepeatPenalty float64  `json:"repeat_penalty,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

// Response is a pointer so a payload without the field can be told apart
// from an empty answer.
type GenerateResponse struct {
	Model         string  `json:"model"`
	CreatedAt     string  `json:"created_at"`
	Response      *string `json:"response"`
	Done          bool    `json:"done"`
	TotalDuration int64   `json:"total_duration"`
}

type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

type ModelInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	ModifiedAt string `json:"modified_at"`
	Size       int64  `json:"size"`
	Digest     string `json:"digest"`
}

type ShowRequest struct {
	Name string `json:"name"`
}

// ShowResponse keeps the upstream payload as is, only the fields the API
// surfaces are typed.
type ShowResponse map[string]interface{}
