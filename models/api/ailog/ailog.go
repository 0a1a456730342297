package ailogapimodels

import "time"

type AiLogView struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     string    `json:"userId,omitempty"`
	TaskKind   string    `json:"taskKind"`
	Model      string    `json:"model"`
	DurationMs int64     `json:"durationMs"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
}
