package webpagehandler

import (
	"context"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/lib/utils/helpers"
	initchecker "devassist-backend/lib/utils/init-checker"
	webfetcher "devassist-backend/lib/webpage/fetcher"
	webpageapimodels "devassist-backend/models/api/webpage"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Summarize(ctx context.Context, userID string, request webpageapimodels.SummarizeRequest) (webpageapimodels.SummarizeResponse, error)
}

type impl struct {
	client          ollamaclient.Provider
	fetcher         webfetcher.Provider
	model           string
	timeout         time.Duration
	maxContentChars int
}

var Instance Provider

func NewHandler(client ollamaclient.Provider, fetcher webfetcher.Provider, model string, timeout time.Duration, maxContentChars int) {
	instance := impl{
		client:          client,
		fetcher:         fetcher,
		model:           model,
		timeout:         timeout,
		maxContentChars: maxContentChars,
	}
	initchecker.CheckInit(
		"client", instance.client,
		"fetcher", instance.fetcher,
	)
	Instance = instance
}

func (i impl) Summarize(ctx context.Context, userID string, request webpageapimodels.SummarizeRequest) (resp webpageapimodels.SummarizeResponse, err error) {
	url := strings.TrimSpace(request.URL)
	logger := log.WithField("url", url)

	page, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.WithError(err).Warn("ошибка загрузки веб-страницы")
		return resp, err
	}
	if helpers.IsBlank(page.Text) {
		return resp, apperrors.Validation("The webpage contains no readable text")
	}
	title := page.Title
	if title == "" {
		title = url
	}
	content := helpers.TruncateRunes(page.Text, i.maxContentChars)

	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:  prompt.KindWebpageSummary,
		Model: i.model,
		Prompt: prompt.Build(prompt.Request{
			Kind: prompt.KindWebpageSummary,
			Params: prompt.Params{
				prompt.ParamTitle:   title,
				prompt.ParamURL:     url,
				prompt.ParamContent: content,
			},
			Model: i.model,
		}),
		Timeout: i.timeout,
		UserID:  userID,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка суммаризации веб-страницы")
		return resp, err
	}
	resp.Title = title
	resp.URL = url
	resp.Summary = result.Text
	resp.ContentLength = len([]rune(content))
	return resp, nil
}
