package documenthandler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ollamafake "devassist-backend/lib/ai/ollama/fake"
	documentstore "devassist-backend/lib/document/store"
	filestorage "devassist-backend/lib/file-storage"
	apperrors "devassist-backend/lib/utils/app-errors"
	documentapimodels "devassist-backend/models/api/document"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, answer string, maxChars int) (impl, *ollamafake.Client, string) {
	dir := t.TempDir()
	storage, err := filestorage.NewLocal(dir, "/files")
	require.NoError(t, err)
	fake := ollamafake.New(answer)
	return impl{
		client:  fake,
		store:   documentstore.NewInstance(time.Hour, time.Hour, storage),
		storage: storage,
		cfg:     Config{Model: "llama3", MaxPromptChars: maxChars},
	}, fake, dir
}

func TestUpload(t *testing.T) {
	t.Run(`txt upload check`, func(t *testing.T) {
		handler, _, dir := newTestHandler(t, "", 0)
		resp, err := handler.Upload(context.Background(), "notes.txt", "text/plain", []byte("Hello document"))
		require.NoError(t, err)
		require.NotEmpty(t, resp.DocumentID)
		require.FileExists(t, filepath.Join(dir, "documents", resp.DocumentID+".txt"))

		info, err := handler.Get(resp.DocumentID)
		require.NoError(t, err)
		require.Equal(t, "notes.txt", info.OriginalFilename)
		require.Equal(t, len("Hello document"), info.ContentLength)
	})

	t.Run(`unsupported type check`, func(t *testing.T) {
		handler, _, _ := newTestHandler(t, "", 0)
		_, err := handler.Upload(context.Background(), "a.png", "image/png", []byte("png"))
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, "Only PDF and TXT files are supported", appErr.Message)
	})

	t.Run(`ids are unique check`, func(t *testing.T) {
		handler, _, _ := newTestHandler(t, "", 0)
		first, err := handler.Upload(context.Background(), "a.txt", "text/plain", []byte("a"))
		require.NoError(t, err)
		second, err := handler.Upload(context.Background(), "a.txt", "text/plain", []byte("a"))
		require.NoError(t, err)
		require.NotEqual(t, first.DocumentID, second.DocumentID)
	})
}

func TestAnalyzeAndQuestion(t *testing.T) {
	t.Run(`question check`, func(t *testing.T) {
		handler, fake, _ := newTestHandler(t, "42", 0)
		upload, err := handler.Upload(context.Background(), "a.txt", "text/plain", []byte("The answer is 42."))
		require.NoError(t, err)
		resp, err := handler.Question(context.Background(), "", documentapimodels.QuestionRequest{
			DocumentID: upload.DocumentID,
			Question:   "What is the answer?",
		})
		require.NoError(t, err)
		require.Equal(t, "42", resp.Answer)
		require.Contains(t, fake.LastRequest().Prompt, "The answer is 42.")
		require.Contains(t, fake.LastRequest().Prompt, "Question: What is the answer?")
	})

	t.Run(`unknown id makes no call check`, func(t *testing.T) {
		handler, fake, _ := newTestHandler(t, "x", 0)
		_, err := handler.Question(context.Background(), "", documentapimodels.QuestionRequest{DocumentID: "missing", Question: "q"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.KindValidation, appErr.Kind)
		require.Equal(t, "Invalid document ID", appErr.Message)
		_, err = handler.Analyze(context.Background(), "", documentapimodels.AnalyzeRequest{DocumentID: "missing"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		require.Equal(t, 0, fake.Calls())
	})

	t.Run(`long document truncated check`, func(t *testing.T) {
		handler, fake, _ := newTestHandler(t, "summary", 10)
		upload, err := handler.Upload(context.Background(), "a.txt", "text/plain", []byte("0123456789ABCDEF"))
		require.NoError(t, err)
		resp, err := handler.Analyze(context.Background(), "", documentapimodels.AnalyzeRequest{DocumentID: upload.DocumentID})
		require.NoError(t, err)
		require.Equal(t, "summary", resp.Analysis)
		require.Contains(t, fake.LastRequest().Prompt, "0123456789\n")
		require.False(t, strings.Contains(fake.LastRequest().Prompt, "ABCDEF"))
	})
}

func TestDelete(t *testing.T) {
	handler, _, dir := newTestHandler(t, "", 0)
	upload, err := handler.Upload(context.Background(), "a.txt", "text/plain", []byte("abc"))
	require.NoError(t, err)

	require.NoError(t, handler.Delete(upload.DocumentID))
	_, err = os.Stat(filepath.Join(dir, "documents", upload.DocumentID+".txt"))
	require.True(t, os.IsNotExist(err))
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(handler.Delete(upload.DocumentID)))
	_, err = handler.Get(upload.DocumentID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
