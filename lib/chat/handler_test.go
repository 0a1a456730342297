package chathandler

import (
	"context"
	"strings"
	"testing"

	ollamafake "devassist-backend/lib/ai/ollama/fake"
	apperrors "devassist-backend/lib/utils/app-errors"
	chatapimodels "devassist-backend/models/api/chat"

	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	t.Run(`default model check`, func(t *testing.T) {
		fake := ollamafake.New("hi there")
		handler := impl{client: fake, model: "llama3"}
		resp, err := handler.Chat(context.Background(), "", chatapimodels.ChatRequest{Message: "hello"})
		require.NoError(t, err)
		require.Equal(t, "hi there", resp.Response)
		require.Equal(t, "llama3", resp.Model)
		require.Equal(t, "llama3", fake.LastRequest().Model)
		require.True(t, strings.HasSuffix(fake.LastRequest().Prompt, "User: hello\nAssistant:"))
	})

	t.Run(`model override and history check`, func(t *testing.T) {
		fake := ollamafake.New("ok")
		handler := impl{client: fake, model: "llama3"}
		resp, err := handler.Chat(context.Background(), "", chatapimodels.ChatRequest{
			Message: "and now?",
			Model:   "mistral",
			History: []chatapimodels.HistoryMessage{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, "mistral", resp.Model)
		require.Contains(t, fake.LastRequest().Prompt, "User: hi\nAssistant: hello\nUser: and now?\nAssistant:")
	})

	t.Run(`upstream error passed through check`, func(t *testing.T) {
		fake := ollamafake.New("")
		fake.Err = apperrors.New(apperrors.KindUpstreamUnavailable, "Ollama server is not running", "", nil)
		_, err := impl{client: fake, model: "llama3"}.Chat(context.Background(), "", chatapimodels.ChatRequest{Message: "hello"})
		require.Equal(t, apperrors.KindUpstreamUnavailable, apperrors.KindOf(err))
	})
}
