package ailog

import (
	"context"
	"time"

	ailogstore "devassist-backend/lib/ai/ai-log-store"
	ollamaclient "devassist-backend/lib/ai/ollama"
	apperrors "devassist-backend/lib/utils/app-errors"
	ollamamodels "devassist-backend/models/api/ollama"
	dbmodels "devassist-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// запись в журнал не должна задерживать ответ пользователю
const defaultSaveTimeout = 2 * time.Second

// NewAuditedClient записывает каждый вызов Generate в журнал запросов к ИИ.
// Ошибка записи логируется и не меняет результат вызова.
func NewAuditedClient(next ollamaclient.Provider, store ailogstore.Provider) ollamaclient.Provider {
	return &auditedClient{
		next:        next,
		store:       store,
		saveTimeout: defaultSaveTimeout,
	}
}

type auditedClient struct {
	next        ollamaclient.Provider
	store       ailogstore.Provider
	saveTimeout time.Duration
}

func (a auditedClient) Generate(ctx context.Context, req ollamaclient.GenerateRequest) (ollamaclient.GenerationResult, error) {
	now := time.Now()
	result, err := a.next.Generate(ctx, req)

	rec := dbmodels.AiLog{
		UserID:     req.UserID,
		TaskKind:   string(req.Kind),
		Model:      req.Model,
		Prompt:     req.Prompt,
		Answer:     result.Text,
		DurationMs: time.Since(now).Milliseconds(),
		Status:     statusOf(err),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	// запрос мог завершиться по таймауту, запись все равно нужна
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.saveTimeout)
	defer cancel()
	if _, saveErr := a.store.Save(saveCtx, rec); saveErr != nil {
		log.
			WithField("task", req.Kind).
			WithError(saveErr).
			Warn("ошибка сохранения журнала запросов к ИИ")
	}
	return result, err
}

func (a auditedClient) Tags(ctx context.Context) (ollamamodels.TagsResponse, error) {
	return a.next.Tags(ctx)
}

func (a auditedClient) Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error) {
	return a.next.Show(ctx, name)
}

func (a auditedClient) BaseURL() string {
	return a.next.BaseURL()
}

func statusOf(err error) dbmodels.AiLogStatus {
	if err == nil {
		return dbmodels.AiLogSuccess
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindUpstreamUnavailable:
		return dbmodels.AiLogUnavailable
	case apperrors.KindUpstreamTimeout:
		return dbmodels.AiLogTimeout
	}
	return dbmodels.AiLogError
}
