package chatapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type HistoryMessage struct {
	Role    string `json:"role"`    // user | assistant
	Content string `json:"content"` // текст сообщения
}

type ChatRequest struct {
	Message string           `json:"message"`
	Model   string           `json:"model"`   // необязательно, модель по умолчанию из конфига
	History []HistoryMessage `json:"history"` // история диалога, хранится на клиенте
}

func (r ChatRequest) Validate() error {
	if len(strings.TrimSpace(r.Message)) == 0 {
		return errors.New("Message is required")
	}
	for _, msg := range r.History {
		if msg.Role != "user" && msg.Role != "assistant" {
			return errors.New("History role must be 'user' or 'assistant'")
		}
	}
	return nil
}

type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}
