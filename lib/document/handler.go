package documenthandler

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	textextract "devassist-backend/lib/document/extract"
	documentstore "devassist-backend/lib/document/store"
	filestorage "devassist-backend/lib/file-storage"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/lib/utils/helpers"
	initchecker "devassist-backend/lib/utils/init-checker"
	documentapimodels "devassist-backend/models/api/document"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const invalidDocumentMessage = "Invalid document ID"

type Provider interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (documentapimodels.UploadResponse, error)
	Analyze(ctx context.Context, userID string, request documentapimodels.AnalyzeRequest) (documentapimodels.AnalyzeResponse, error)
	Question(ctx context.Context, userID string, request documentapimodels.QuestionRequest) (documentapimodels.QuestionResponse, error)
	Get(id string) (documentapimodels.DocumentInfo, error)
	Delete(id string) error
}

type Config struct {
	Model          string
	Timeout        time.Duration
	MaxPromptChars int
}

type impl struct {
	client  ollamaclient.Provider
	store   documentstore.Provider
	storage filestorage.Provider
	cfg     Config
}

var Instance Provider

func NewHandler(client ollamaclient.Provider, store documentstore.Provider, storage filestorage.Provider, cfg Config) {
	instance := impl{
		client:  client,
		store:   store,
		storage: storage,
		cfg:     cfg,
	}
	initchecker.CheckInit(
		"client", instance.client,
		"store", instance.store,
	)
	Instance = instance
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("model", i.cfg.Model)
}

func (i impl) Upload(ctx context.Context, filename, contentType string, data []byte) (resp documentapimodels.UploadResponse, err error) {
	mediaType := textextract.DetectType(contentType, filename)
	text, err := textextract.Extract(mediaType, data)
	if err != nil {
		i.getLogger().
			WithField("filename", filename).
			WithField("content_type", mediaType).
			WithError(err).
			Warn("не удалось извлечь текст документа")
		return resp, err
	}

	id := uuid.NewString()
	key := ""
	if i.storage != nil {
		key, err = i.storage.Save(ctx,
			filestorage.MakeKey(filestorage.DocumentsPrefix, id+strings.ToLower(filepath.Ext(filename))),
			bytes.NewReader(data), int64(len(data)), mediaType)
		if err != nil {
			i.getLogger().WithError(err).Error("ошибка сохранения файла документа")
			return resp, apperrors.Internal("Failed to store the document", err)
		}
	}
	i.store.Put(documentstore.Document{
		ID:               id,
		OriginalFilename: filename,
		ContentType:      mediaType,
		StorageKey:       key,
		Content:          text,
		UploadedAt:       time.Now(),
	})
	i.getLogger().
		WithField("document_id", id).
		WithField("content_len", len(text)).
		Info("документ загружен")

	resp.Message = "Document uploaded successfully"
	resp.DocumentID = id
	return resp, nil
}

func (i impl) Analyze(ctx context.Context, userID string, request documentapimodels.AnalyzeRequest) (resp documentapimodels.AnalyzeResponse, err error) {
	doc, ok := i.store.Get(strings.TrimSpace(request.DocumentID))
	if !ok {
		return resp, apperrors.Validation(invalidDocumentMessage)
	}
	resp.Analysis, err = i.generate(ctx, userID, prompt.KindDocumentAnalyze, prompt.Params{
		prompt.ParamDocument: helpers.TruncateRunes(doc.Content, i.cfg.MaxPromptChars),
	})
	return resp, err
}

func (i impl) Question(ctx context.Context, userID string, request documentapimodels.QuestionRequest) (resp documentapimodels.QuestionResponse, err error) {
	doc, ok := i.store.Get(strings.TrimSpace(request.DocumentID))
	if !ok {
		return resp, apperrors.Validation(invalidDocumentMessage)
	}
	resp.Answer, err = i.generate(ctx, userID, prompt.KindDocumentQuestion, prompt.Params{
		prompt.ParamDocument: helpers.TruncateRunes(doc.Content, i.cfg.MaxPromptChars),
		prompt.ParamQuestion: request.Question,
	})
	return resp, err
}

func (i impl) Get(id string) (documentapimodels.DocumentInfo, error) {
	doc, ok := i.store.Get(strings.TrimSpace(id))
	if !ok {
		return documentapimodels.DocumentInfo{}, apperrors.NotFound("Document not found")
	}
	return documentapimodels.DocumentInfo{
		ID:               doc.ID,
		OriginalFilename: doc.OriginalFilename,
		ContentLength:    len([]rune(doc.Content)),
		UploadedAt:       doc.UploadedAt,
	}, nil
}

func (i impl) Delete(id string) error {
	if !i.store.Delete(strings.TrimSpace(id)) {
		return apperrors.NotFound("Document not found")
	}
	return nil
}

func (i impl) generate(ctx context.Context, userID string, kind prompt.TaskKind, params prompt.Params) (string, error) {
	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:    kind,
		Model:   i.cfg.Model,
		Prompt:  prompt.Build(prompt.Request{Kind: kind, Params: params, Model: i.cfg.Model}),
		Timeout: i.cfg.Timeout,
		UserID:  userID,
	})
	if err != nil {
		i.getLogger().
			WithField("task", kind).
			WithError(err).
			Error("ошибка обработки документа")
		return "", err
	}
	return result.Text, nil
}
