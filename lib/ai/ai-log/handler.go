package ailog

import (
	ailogstore "devassist-backend/lib/ai/ai-log-store"
	apperrors "devassist-backend/lib/utils/app-errors"
	ailogapimodels "devassist-backend/models/api/ailog"

	log "github.com/sirupsen/logrus"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Provider interface {
	ListRecent(taskKind string, limit int) ([]ailogapimodels.AiLogView, error)
}

type impl struct {
	store ailogstore.Provider
}

// Instance остается nil, если журнал отключен (нет БД)
var Instance Provider

func NewHandler(store ailogstore.Provider) {
	Instance = impl{
		store: store,
	}
}

func (i impl) ListRecent(taskKind string, limit int) ([]ailogapimodels.AiLogView, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	list, err := i.store.ListRecent(taskKind, limit)
	if err != nil {
		log.WithField("task", taskKind).WithError(err).Error("ошибка получения журнала запросов к ИИ")
		return nil, apperrors.Internal("Failed to load the AI log", err)
	}
	result := make([]ailogapimodels.AiLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, ailogapimodels.AiLogView{
			ID:         rec.ID,
			CreatedAt:  rec.CreatedAt,
			UserID:     rec.UserID,
			TaskKind:   rec.TaskKind,
			Model:      rec.Model,
			DurationMs: rec.DurationMs,
			Status:     string(rec.Status),
			Error:      rec.Error,
		})
	}
	return result, nil
}
