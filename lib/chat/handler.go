package chathandler

import (
	"context"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	chatapimodels "devassist-backend/models/api/chat"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Chat(ctx context.Context, userID string, request chatapimodels.ChatRequest) (chatapimodels.ChatResponse, error)
}

type impl struct {
	client  ollamaclient.Provider
	model   string
	timeout time.Duration
}

var Instance Provider

func NewHandler(client ollamaclient.Provider, model string, timeout time.Duration) {
	Instance = impl{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

func (i impl) Chat(ctx context.Context, userID string, request chatapimodels.ChatRequest) (resp chatapimodels.ChatResponse, err error) {
	model := strings.TrimSpace(request.Model)
	if model == "" {
		model = i.model
	}
	history := make([]prompt.Turn, 0, len(request.History))
	for _, msg := range request.History {
		history = append(history, prompt.Turn{Role: prompt.Role(msg.Role), Content: msg.Content})
	}
	text := prompt.Build(prompt.Request{
		Kind:    prompt.KindChat,
		Params:  prompt.Params{prompt.ParamMessage: request.Message},
		History: history,
		Model:   model,
	})
	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:    prompt.KindChat,
		Model:   model,
		Prompt:  text,
		Timeout: i.timeout,
		UserID:  userID,
	})
	if err != nil {
		log.
			WithField("model", model).
			WithField("history_len", len(history)).
			WithError(err).
			Error("ошибка получения ответа в чате")
		return resp, err
	}
	resp.Response = result.Text
	resp.Model = model
	return resp, nil
}
