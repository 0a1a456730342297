package imagegenhandler

import (
	"context"
	"fmt"
	"html"
	"strings"

	filestorage "devassist-backend/lib/file-storage"
	sdclient "devassist-backend/lib/imagegen/sd-client"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/lib/utils/helpers"
	imagegenapimodels "devassist-backend/models/api/imagegen"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const placeholderMessage = "Image generation service is unavailable, a placeholder image was created"

type Provider interface {
	Generate(ctx context.Context, request imagegenapimodels.GenerateRequest) (imagegenapimodels.GenerateResponse, error)
}

type Defaults struct {
	Width  int
	Height int
	Steps  int
}

type impl struct {
	client   sdclient.Provider
	storage  filestorage.Provider
	defaults Defaults
}

var Instance Provider

func NewHandler(client sdclient.Provider, storage filestorage.Provider, defaults Defaults) {
	Instance = impl{
		client:   client,
		storage:  storage,
		defaults: defaults,
	}
}

func (i impl) Generate(ctx context.Context, request imagegenapimodels.GenerateRequest) (resp imagegenapimodels.GenerateResponse, err error) {
	req := imagegenapimodels.Txt2ImgRequest{
		Prompt:         strings.TrimSpace(request.Prompt),
		NegativePrompt: strings.TrimSpace(request.NegativePrompt),
		Width:          orDefault(request.Width, i.defaults.Width),
		Height:         orDefault(request.Height, i.defaults.Height),
		Steps:          orDefault(request.Steps, i.defaults.Steps),
	}
	logger := log.WithField("width", req.Width).WithField("height", req.Height)

	image, err := i.client.Txt2Img(ctx, req)
	if err != nil {
		if apperrors.Is(err, apperrors.KindUpstreamUnavailable) || apperrors.Is(err, apperrors.KindUpstreamTimeout) {
			logger.WithError(err).Warn("сервис генерации изображений недоступен, создается заглушка")
			return i.placeholder(ctx, req)
		}
		logger.WithError(err).Error("ошибка генерации изображения")
		return resp, err
	}
	resp.Success = true
	resp.Mode = imagegenapimodels.ModeGenerated
	resp.Data = imagegenapimodels.GeneratedData{
		Image:  image,
		Prompt: req.Prompt,
		Width:  req.Width,
		Height: req.Height,
	}
	return resp, nil
}

func (i impl) placeholder(ctx context.Context, req imagegenapimodels.Txt2ImgRequest) (resp imagegenapimodels.GenerateResponse, err error) {
	svg := placeholderSVG(req.Prompt, req.Width, req.Height)
	key, err := i.storage.Save(ctx, filestorage.MakeKey(filestorage.ImagesPrefix, uuid.NewString()+".svg"),
		strings.NewReader(svg), int64(len(svg)), "image/svg+xml")
	if err != nil {
		log.WithError(err).Error("ошибка сохранения изображения-заглушки")
		return resp, apperrors.Internal("Failed to store the placeholder image", err)
	}
	url, err := i.storage.URL(ctx, key)
	if err != nil {
		log.WithError(err).Error("ошибка получения ссылки на изображение-заглушку")
		return resp, apperrors.Internal("Failed to store the placeholder image", err)
	}
	resp.Success = true
	resp.Mode = imagegenapimodels.ModePlaceholder
	resp.Data = imagegenapimodels.PlaceholderData{
		ImageURL: url,
		Prompt:   req.Prompt,
		Message:  placeholderMessage,
	}
	return resp, nil
}

func placeholderSVG(prompt string, width, height int) string {
	caption := html.EscapeString(helpers.TruncateRunes(prompt, 80))
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
		`<text x="50%%" y="45%%" font-family="sans-serif" font-size="20" fill="#374151" text-anchor="middle">Image placeholder</text>`+
		`<text x="50%%" y="55%%" font-family="sans-serif" font-size="12" fill="#6b7280" text-anchor="middle">%s</text>`+
		`</svg>`, width, height, width, height, caption)
}

func orDefault(value, def int) int {
	if value > 0 {
		return value
	}
	return def
}
