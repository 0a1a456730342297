package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"devassist-backend/lib/ai/prompt"
	apperrors "devassist-backend/lib/utils/app-errors"
	ollamamodels "devassist-backend/models/api/ollama"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	generatePath = "/api/generate"
	tagsPath     = "/api/tags"
	showPath     = "/api/show"

	maxErrorBodyLen = 512
)

type GenerateRequest struct {
	Kind   prompt.TaskKind
	Model  string
	Prompt string
	// Timeout ограничивает только этот вызов, 0 - действует лишь контекст вызывающего
	Timeout time.Duration
	UserID  string
}

type GenerationResult struct {
	Text     string
	Duration time.Duration
	Model    string
}

type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerationResult, error)
	Tags(ctx context.Context) (ollamamodels.TagsResponse, error)
	Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error)
	BaseURL() string
}

type impl struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) Provider {
	return &impl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (i impl) BaseURL() string {
	return i.baseURL
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("ai", "ollama")
}

func (i impl) Generate(ctx context.Context, req GenerateRequest) (GenerationResult, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}
	logger := i.getLogger().
		WithField("model", req.Model).
		WithField("task", req.Kind)

	body := ollamamodels.GenerateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
	}
	now := time.Now()
	var payload ollamamodels.GenerateResponse
	err := i.doJSON(ctx, http.MethodPost, generatePath, body, &payload)
	if err != nil {
		logger.WithError(err).Warn("ошибка запроса к Ollama")
		return GenerationResult{}, err
	}
	if payload.Response == nil {
		return GenerationResult{}, apperrors.New(apperrors.KindUpstreamError,
			"AI model returned an invalid response",
			"response field is missing in Ollama payload", nil)
	}
	elapsed := time.Since(now)
	duration := time.Duration(payload.TotalDuration)
	if duration <= 0 {
		duration = elapsed
	}
	model := payload.Model
	if model == "" {
		model = req.Model
	}
	logger.
		WithField("answer_len", len(*payload.Response)).
		WithField("answer_duration_sec", elapsed.Seconds()).
		Info("Ответ AI получен")

	return GenerationResult{
		Text:     *payload.Response,
		Duration: duration,
		Model:    model,
	}, nil
}

func (i impl) Tags(ctx context.Context) (ollamamodels.TagsResponse, error) {
	var resp ollamamodels.TagsResponse
	err := i.doJSON(ctx, http.MethodGet, tagsPath, nil, &resp)
	if err != nil {
		return ollamamodels.TagsResponse{}, err
	}
	return resp, nil
}

func (i impl) Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error) {
	resp := ollamamodels.ShowResponse{}
	err := i.doJSON(ctx, http.MethodPost, showPath, ollamamodels.ShowRequest{Name: name}, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var reader io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return apperrors.Internal("failed to encode Ollama request", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, i.baseURL+path, reader)
	if err != nil {
		return apperrors.Internal("failed to create Ollama request", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := i.client.Do(httpReq)
	if err != nil {
		return classifyTransportError(err, i.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return apperrors.New(apperrors.KindUpstreamError,
			"AI model returned an error",
			fmt.Sprintf("Ollama API: %s: %s", resp.Status, strings.TrimSpace(string(data))), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(err, i.baseURL)
	}
	if err = json.Unmarshal(data, out); err != nil {
		return apperrors.New(apperrors.KindUpstreamError,
			"AI model returned an invalid response",
			"undecodable Ollama payload", err)
	}
	return nil
}

func classifyTransportError(err error, baseURL string) error {
	if IsTimeoutError(err) {
		return apperrors.New(apperrors.KindUpstreamTimeout,
			"Request to the AI model timed out",
			"the model did not answer before the deadline", err)
	}
	if IsUnreachableError(err) {
		return apperrors.New(apperrors.KindUpstreamUnavailable,
			"Ollama server is not running",
			fmt.Sprintf("could not connect to %s, start it with 'ollama serve'", baseURL), err)
	}
	return apperrors.New(apperrors.KindUpstreamError,
		"Failed to reach the AI model", err.Error(), err)
}

// IsTimeoutError истек дедлайн контекста или таймаут клиента
func IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsUnreachableError соединение отклонено или адрес недоступен
func IsUnreachableError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func IsConnectionRefused(err error) bool {
	return apperrors.Is(err, apperrors.KindUpstreamUnavailable)
}

func IsTimeout(err error) bool {
	return apperrors.Is(err, apperrors.KindUpstreamTimeout)
}
