package docgenhandler

import (
	"context"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	pdfexport "devassist-backend/lib/export/pdf"
	apperrors "devassist-backend/lib/utils/app-errors"
	docgenapimodels "devassist-backend/models/api/docgen"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Generate(ctx context.Context, userID string, request docgenapimodels.GenerateRequest) (docgenapimodels.GenerateResponse, error)
	ExportPDF(request docgenapimodels.ExportRequest) ([]byte, error)
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

func (i impl) Generate(ctx context.Context, userID string, request docgenapimodels.GenerateRequest) (resp docgenapimodels.GenerateResponse, err error) {
	text := prompt.Build(prompt.Request{
		Kind: prompt.KindDocGen,
		Params: prompt.Params{
			prompt.ParamCode:     request.Code,
			prompt.ParamLanguage: request.Language,
			prompt.ParamStyle:    request.Style,
		},
		Model: i.model,
	})
	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:    prompt.KindDocGen,
		Model:   i.model,
		Prompt:  text,
		Timeout: i.timeout,
		UserID:  userID,
	})
	if err != nil {
		log.
			WithField("language", request.Language).
			WithError(err).
			Error("ошибка генерации документации")
		return resp, err
	}
	resp.Documentation = result.Text
	return resp, nil
}

func (i impl) ExportPDF(request docgenapimodels.ExportRequest) ([]byte, error) {
	data, err := pdfexport.GenerateDocumentation(request.Title, request.Documentation)
	if err != nil {
		log.WithError(err).Error("ошибка формирования PDF документации")
		return nil, apperrors.Internal("Failed to export documentation", err)
	}
	return data, nil
}
