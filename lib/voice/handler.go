package voicehandler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	"devassist-backend/lib/ai/prompt"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/lib/utils/lock"
	"devassist-backend/lib/voice/whisper"
	voiceapimodels "devassist-backend/models/api/voice"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const lockName = "Transcribe"

type Provider interface {
	Process(ctx context.Context, userID, filename string, audio io.Reader) (voiceapimodels.ProcessResponse, error)
}

type Config struct {
	Model     string
	Timeout   time.Duration
	UploadDir string
}

type impl struct {
	client      ollamaclient.Provider
	transcriber whisper.Transcriber
	slots       *lock.ResourceLock
	cfg         Config
}

var Instance Provider

func NewHandler(client ollamaclient.Provider, transcriber whisper.Transcriber, slots *lock.ResourceLock, cfg Config) error {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога для аудио")
	}
	Instance = impl{
		client:      client,
		transcriber: transcriber,
		slots:       slots,
		cfg:         cfg,
	}
	return nil
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("model", i.cfg.Model)
}

// Process сохраняет аудио во временный файл, транскрибирует и отвечает
// на распознанный текст. Временный файл удаляется на любом пути.
func (i impl) Process(ctx context.Context, userID, filename string, audio io.Reader) (resp voiceapimodels.ProcessResponse, err error) {
	audioPath, err := i.saveTemp(filename, audio)
	if err != nil {
		return resp, err
	}
	defer func() {
		if rmErr := os.Remove(audioPath); rmErr != nil && !os.IsNotExist(rmErr) {
			i.getLogger().WithError(rmErr).WithField("path", audioPath).Warn("ошибка удаления временного аудиофайла")
		}
	}()

	transcription, err := i.transcribe(ctx, audioPath)
	if err != nil {
		return resp, err
	}

	result, err := i.client.Generate(ctx, ollamaclient.GenerateRequest{
		Kind:  prompt.KindVoiceChat,
		Model: i.cfg.Model,
		Prompt: prompt.Build(prompt.Request{
			Kind:   prompt.KindVoiceChat,
			Params: prompt.Params{prompt.ParamTranscription: transcription},
			Model:  i.cfg.Model,
		}),
		Timeout: i.cfg.Timeout,
		UserID:  userID,
	})
	if err != nil {
		i.getLogger().WithError(err).Error("ошибка получения ответа на голосовое сообщение")
		return resp, err
	}
	resp.Transcription = transcription
	resp.Response = result.Text
	return resp, nil
}

func (i impl) saveTemp(filename string, audio io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		ext = ".webm"
	}
	path := filepath.Join(i.cfg.UploadDir, uuid.NewString()+ext)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", apperrors.Internal("Failed to store the audio file", err)
	}
	_, err = io.Copy(file, audio)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		i.getLogger().WithError(err).Error("ошибка записи временного аудиофайла")
		return "", apperrors.Internal("Failed to store the audio file", err)
	}
	return path, nil
}

// transcribe занимает слот whisper на время распознавания, слот освобождается и при панике
func (i impl) transcribe(ctx context.Context, audioPath string) (string, error) {
	if !i.slots.Acquire(ctx, lockName) {
		return "", apperrors.New(apperrors.KindUpstreamTimeout,
			"Timed out waiting for the transcription service", "all transcription slots are busy", ctx.Err())
	}
	defer i.slots.Release(lockName)
	return i.transcriber.Transcribe(ctx, audioPath)
}
