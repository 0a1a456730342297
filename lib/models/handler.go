package modelshandler

import (
	"context"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	ollamamodels "devassist-backend/models/api/ollama"

	log "github.com/sirupsen/logrus"
)

const healthProbeTimeout = 5 * time.Second

type Provider interface {
	List(ctx context.Context) (ollamamodels.ModelsResponse, error)
	Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error)
	Health(ctx context.Context) ollamamodels.HealthResponse
}

type impl struct {
	client ollamaclient.Provider
}

var Instance Provider

func NewHandler(client ollamaclient.Provider) {
	Instance = impl{
		client: client,
	}
}

func (i impl) List(ctx context.Context) (resp ollamamodels.ModelsResponse, err error) {
	tags, err := i.client.Tags(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка моделей")
		return resp, err
	}
	resp.Models = make([]ollamamodels.ModelShort, 0, len(tags.Models))
	for _, model := range tags.Models {
		resp.Models = append(resp.Models, ollamamodels.ModelShort{
			Name:       model.Name,
			Size:       model.Size,
			ModifiedAt: model.ModifiedAt,
		})
	}
	return resp, nil
}

func (i impl) Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error) {
	resp, err := i.client.Show(ctx, name)
	if err != nil {
		log.WithField("model", name).WithError(err).Error("ошибка получения информации о модели")
		return nil, err
	}
	return resp, nil
}

func (i impl) Health(ctx context.Context) ollamamodels.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	resp := ollamamodels.HealthResponse{Status: "ok", Ollama: "connected"}
	if _, err := i.client.Tags(ctx); err != nil {
		log.WithError(err).Warn("Ollama недоступна")
		resp.Ollama = "disconnected"
	}
	return resp
}
