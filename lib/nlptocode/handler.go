package nlptocodehandler

import (
	"context"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	nlptocodeapimodels "devassist-backend/models/api/nlptocode"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Generate(ctx context.Context, userID string, request nlptocodeapimodels.GenerateRequest) (nlptocodeapimodels.GenerateResponse, error)
	Tests(ctx context.Context, userID string, request nlptocodeapimodels.TestsRequest) (nlptocodeapimodels.TestsResponse, error)
	Improve(ctx context.Context, userID string, request nlptocodeapimodels.ImproveRequest) (nlptocodeapimodels.ImproveResponse, error)
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

func (i impl) Generate(ctx context.Context, userID string, request nlptocodeapimodels.GenerateRequest) (resp nlptocodeapimodels.GenerateResponse, err error) {
	text, err := i.generate(ctx, userID, prompt.KindNLPGenerate, prompt.Params{
		prompt.ParamDescription: request.Description,
		prompt.ParamLanguage:    request.Language,
	})
	if err != nil {
		return resp, err
	}
	resp.Success = true
	resp.Code = text
	return resp, nil
}

func (i impl) Tests(ctx context.Context, userID string, request nlptocodeapimodels.TestsRequest) (resp nlptocodeapimodels.TestsResponse, err error) {
	text, err := i.generate(ctx, userID, prompt.KindNLPTests, prompt.Params{
		prompt.ParamCode:      request.Code,
		prompt.ParamLanguage:  request.Language,
		prompt.ParamFramework: request.Framework,
	})
	if err != nil {
		return resp, err
	}
	resp.Success = true
	resp.TestCode = text
	return resp, nil
}

func (i impl) Improve(ctx context.Context, userID string, request nlptocodeapimodels.ImproveRequest) (resp nlptocodeapimodels.ImproveResponse, err error) {
	text, err := i.generate(ctx, userID, prompt.KindNLPImprove, prompt.Params{
		prompt.ParamCode:         request.Code,
		prompt.ParamLanguage:     request.Language,
		prompt.ParamRequirements: request.Requirements,
	})
	if err != nil {
		return resp, err
	}
	resp.Success = true
	resp.ImprovedCode = text
	return resp, nil
}

func (i impl) generate(ctx context.Context, userID string, kind prompt.TaskKind, params prompt.Params) (string, error) {
	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:    kind,
		Model:   i.model,
		Prompt:  prompt.Build(prompt.Request{Kind: kind, Params: params, Model: i.model}),
		Timeout: i.timeout,
		UserID:  userID,
	})
	if err != nil {
		log.
			WithField("task", kind).
			WithError(err).
			Error("ошибка генерации кода")
		return "", err
	}
	return result.Text, nil
}
