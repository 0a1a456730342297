package codehandler

import (
	"context"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	codeapimodels "devassist-backend/models/api/code"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Analyze(ctx context.Context, userID string, request codeapimodels.CodeRequest) (codeapimodels.AnalysisResponse, error)
	Optimize(ctx context.Context, userID string, request codeapimodels.CodeRequest) (codeapimodels.OptimizationResponse, error)
	Debug(ctx context.Context, userID string, request codeapimodels.CodeRequest) (codeapimodels.DebuggingResponse, error)
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

func (i impl) Analyze(ctx context.Context, userID string, request codeapimodels.CodeRequest) (resp codeapimodels.AnalysisResponse, err error) {
	result, err := i.generate(ctx, userID, prompt.KindCodeAnalyze, request)
	if err != nil {
		return resp, err
	}
	resp.Analysis = result.Text
	resp.Model = i.model
	resp.ProcessingTime = result.Duration.Milliseconds()
	return resp, nil
}

func (i impl) Optimize(ctx context.Context, userID string, request codeapimodels.CodeRequest) (resp codeapimodels.OptimizationResponse, err error) {
	result, err := i.generate(ctx, userID, prompt.KindCodeOptimize, request)
	if err != nil {
		return resp, err
	}
	resp.Optimization = result.Text
	resp.Model = i.model
	resp.ProcessingTime = result.Duration.Milliseconds()
	return resp, nil
}

func (i impl) Debug(ctx context.Context, userID string, request codeapimodels.CodeRequest) (resp codeapimodels.DebuggingResponse, err error) {
	result, err := i.generate(ctx, userID, prompt.KindCodeDebug, request)
	if err != nil {
		return resp, err
	}
	resp.Debugging = result.Text
	resp.Model = i.model
	resp.ProcessingTime = result.Duration.Milliseconds()
	return resp, nil
}

func (i impl) generate(ctx context.Context, userID string, kind prompt.TaskKind, request codeapimodels.CodeRequest) (ollamaclient.GenerationResult, error) {
	text := prompt.Build(prompt.Request{
		Kind: kind,
		Params: prompt.Params{
			prompt.ParamCode:     request.Code,
			prompt.ParamLanguage: request.Language,
			prompt.ParamGoal:     request.Goal,
			prompt.ParamError:    request.Error,
		},
		Model: i.model,
	})
	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:    kind,
		Model:   i.model,
		Prompt:  text,
		Timeout: i.timeout,
		UserID:  userID,
	})
	if err != nil {
		log.
			WithField("task", kind).
			WithField("language", request.Language).
			WithError(err).
			Error("ошибка обработки кода")
		return result, err
	}
	return result, nil
}
