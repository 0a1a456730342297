package sdclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	apperrors "devassist-backend/lib/utils/app-errors"
	imagegenapimodels "devassist-backend/models/api/imagegen"
)

const txt2imgPath = "/sdapi/v1/txt2img"

type Provider interface {
	// Txt2Img возвращает первое сгенерированное изображение (png в base64)
	Txt2Img(ctx context.Context, req imagegenapimodels.Txt2ImgRequest) (string, error)
}

type impl struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) Provider {
	return impl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: timeout,
	}
}

func (i impl) Txt2Img(ctx context.Context, req imagegenapimodels.Txt2ImgRequest) (string, error) {
	if i.baseURL == "" {
		return "", apperrors.New(apperrors.KindUpstreamUnavailable, "Image generation service is not configured", "", nil)
	}
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", apperrors.Internal("failed to encode image request", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+txt2imgPath, bytes.NewReader(jsonData))
	if err != nil {
		return "", apperrors.Internal("failed to create image request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(httpReq)
	if err != nil {
		if ollamaclient.IsTimeoutError(err) {
			return "", apperrors.New(apperrors.KindUpstreamTimeout, "Image generation timed out", err.Error(), err)
		}
		if ollamaclient.IsUnreachableError(err) {
			return "", apperrors.New(apperrors.KindUpstreamUnavailable, "Image generation service is not running", err.Error(), err)
		}
		return "", apperrors.New(apperrors.KindUpstreamError, "Failed to reach the image generation service", err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.New(apperrors.KindUpstreamError, "Image generation failed",
			fmt.Sprintf("txt2img: %s: %s", resp.Status, strings.TrimSpace(string(data))), nil)
	}
	var payload imagegenapimodels.Txt2ImgResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.New(apperrors.KindUpstreamError, "Image generation returned an invalid response", "undecodable payload", err)
	}
	if len(payload.Images) == 0 || payload.Images[0] == "" {
		return "", apperrors.New(apperrors.KindUpstreamError, "Image generation returned no image", "", nil)
	}
	return payload.Images[0], nil
}
