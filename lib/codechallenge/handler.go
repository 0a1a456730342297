package codechallengehandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devassist-backend/lib/ai/interpreter"
	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	challengefixtures "devassist-backend/lib/codechallenge/fixtures"
	apperrors "devassist-backend/lib/utils/app-errors"
	initchecker "devassist-backend/lib/utils/init-checker"
	codechallengeapimodels "devassist-backend/models/api/codechallenge"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List() []codechallengeapimodels.ChallengeShort
	Get(id string) (codechallengeapimodels.Challenge, error)
	Evaluate(ctx context.Context, userID string, request codechallengeapimodels.EvaluateRequest) (codechallengeapimodels.EvaluateResponse, error)
	Analyze(ctx context.Context, userID string, request codechallengeapimodels.AnalyzeRequest) (codechallengeapimodels.AnalyzeResponse, error)
}

type impl struct {
	client   ollamaclient.Provider
	fixtures challengefixtures.Provider
	model    string
	timeout  time.Duration
}

var Instance Provider

func NewHandler(client ollamaclient.Provider, fixtures challengefixtures.Provider, model string, timeout time.Duration) {
	instance := impl{
		client:   client,
		fixtures: fixtures,
		model:    model,
		timeout:  timeout,
	}
	initchecker.CheckInit(
		"client", instance.client,
		"fixtures", instance.fixtures,
	)
	Instance = instance
}

func (i impl) List() []codechallengeapimodels.ChallengeShort {
	return i.fixtures.List()
}

func (i impl) Get(id string) (codechallengeapimodels.Challenge, error) {
	challenge, ok := i.fixtures.Get(id)
	if !ok {
		return challenge, apperrors.NotFound("Challenge not found")
	}
	return challenge, nil
}

func (i impl) Evaluate(ctx context.Context, userID string, request codechallengeapimodels.EvaluateRequest) (resp codechallengeapimodels.EvaluateResponse, err error) {
	challenge, err := i.Get(request.ChallengeID.String())
	if err != nil {
		log.WithField("challenge_id", request.ChallengeID).Warn("задача не найдена")
		return resp, err
	}
	result, err := i.generate(ctx, userID, prompt.KindChallengeEvaluate, challengeParams(challenge, request.Code, request.Language))
	if err != nil {
		return resp, err
	}
	resp.Evaluation = result.Text
	resp.Model = i.model
	resp.ProcessingTime = result.Duration.Milliseconds()
	resp.Challenge = codechallengeapimodels.ChallengeRef{
		ID:    challenge.ID,
		Title: challenge.Title,
	}
	return resp, nil
}

func (i impl) Analyze(ctx context.Context, userID string, request codechallengeapimodels.AnalyzeRequest) (resp codechallengeapimodels.AnalyzeResponse, err error) {
	result, err := i.generate(ctx, userID, prompt.KindChallengeAnalyze, challengeParams(*request.Challenge, request.Code, request.Language))
	if err != nil {
		return resp, err
	}
	outcome := interpreter.Evaluation(result.Text)
	if _, ok := interpreter.ExtractJSON(result.Text); !ok {
		log.
			WithField("challenge_id", request.Challenge.ID).
			WithField("answer_len", len(result.Text)).
			Warn("не удалось извлечь JSON из ответа модели")
	}
	resp.Success = outcome.Success
	resp.Message = outcome.Message
	resp.Model = i.model
	resp.ProcessingTime = result.Duration.Milliseconds()
	return resp, nil
}

func (i impl) generate(ctx context.Context, userID string, kind prompt.TaskKind, params prompt.Params) (ollamaclient.GenerationResult, error) {
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
			WithField("challenge_id", params[prompt.ParamChallengeID]).
			WithError(err).
			Error("ошибка проверки решения задачи")
		return result, err
	}
	return result, nil
}

func challengeParams(challenge codechallengeapimodels.Challenge, code, language string) prompt.Params {
	return prompt.Params{
		prompt.ParamCode:                 code,
		prompt.ParamLanguage:             language,
		prompt.ParamChallengeID:          challenge.ID.String(),
		prompt.ParamChallengeTitle:       challenge.Title,
		prompt.ParamChallengeDescription: challenge.Description,
		prompt.ParamChallengeDifficulty:  challenge.Difficulty,
		prompt.ParamChallengeExamples:    formatExamples(challenge.Examples),
	}
}

func formatExamples(examples []codechallengeapimodels.Example) string {
	sb := strings.Builder{}
	for k, example := range examples {
		fmt.Fprintf(&sb, "Example %d:\nInput: %s\nOutput: %s\n", k+1, example.Input, example.Output)
		if example.Explanation != "" {
			fmt.Fprintf(&sb, "Explanation: %s\n", example.Explanation)
		}
	}
	return strings.TrimSpace(sb.String())
}
