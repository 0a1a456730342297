package nlptocodehandler

import (
	"context"
	"testing"

	ollamafake "devassist-backend/lib/ai/ollama/fake"
	"devassist-backend/lib/ai/prompt"
	apperrors "devassist-backend/lib/utils/app-errors"
	nlptocodeapimodels "devassist-backend/models/api/nlptocode"

	"github.com/stretchr/testify/require"
)

func TestNLPToCode(t *testing.T) {
	t.Run(`generate check`, func(t *testing.T) {
		fake := ollamafake.New("```go\nfunc Sum() {}\n```")
		resp, err := impl{client: fake, model: "codellama"}.Generate(context.Background(), "", nlptocodeapimodels.GenerateRequest{
			Description: "sum a slice",
			Language:    "Go",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, "```go\nfunc Sum() {}\n```", resp.Code)
		require.Equal(t, prompt.KindNLPGenerate, fake.LastRequest().Kind)
		require.Contains(t, fake.LastRequest().Prompt, "sum a slice")
	})

	t.Run(`tests framework check`, func(t *testing.T) {
		fake := ollamafake.New("tests")
		resp, err := impl{client: fake, model: "codellama"}.Tests(context.Background(), "", nlptocodeapimodels.TestsRequest{
			Code:      "def f(): pass",
			Language:  "python",
			Framework: "pytest",
		})
		require.NoError(t, err)
		require.Equal(t, "tests", resp.TestCode)
		require.Contains(t, fake.LastRequest().Prompt, "Test framework: pytest")
	})

	t.Run(`improve error check`, func(t *testing.T) {
		fake := ollamafake.New("")
		fake.Err = apperrors.New(apperrors.KindUpstreamTimeout, "timeout", "", nil)
		resp, err := impl{client: fake, model: "codellama"}.Improve(context.Background(), "", nlptocodeapimodels.ImproveRequest{
			Code:     "x",
			Language: "go",
		})
		require.Error(t, err)
		require.False(t, resp.Success)
	})
}
