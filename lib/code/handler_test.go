package codehandler

import (
	"context"
	"testing"

	ollamafake "devassist-backend/lib/ai/ollama/fake"
	"devassist-backend/lib/ai/prompt"
	codeapimodels "devassist-backend/models/api/code"

	"github.com/stretchr/testify/require"
)

func TestCodeHandler(t *testing.T) {
	request := codeapimodels.CodeRequest{
		Code:     "def f(x):\n    return x*2",
		Language: "python",
		Goal:     "speed",
		Error:    "TypeError",
	}

	t.Run(`analyze check`, func(t *testing.T) {
		fake := ollamafake.New("## Summary")
		resp, err := impl{client: fake, model: "codellama"}.Analyze(context.Background(), "", request)
		require.NoError(t, err)
		require.Equal(t, "## Summary", resp.Analysis)
		require.Equal(t, "codellama", resp.Model)
		require.Equal(t, prompt.KindCodeAnalyze, fake.LastRequest().Kind)
		require.Contains(t, fake.LastRequest().Prompt, "```python\ndef f(x):\n    return x*2\n```")
	})

	t.Run(`optimize goal check`, func(t *testing.T) {
		fake := ollamafake.New("faster")
		resp, err := impl{client: fake, model: "codellama"}.Optimize(context.Background(), "", request)
		require.NoError(t, err)
		require.Equal(t, "faster", resp.Optimization)
		require.Contains(t, fake.LastRequest().Prompt, "Optimization goal: speed")
	})

	t.Run(`debug error check`, func(t *testing.T) {
		fake := ollamafake.New("fixed")
		resp, err := impl{client: fake, model: "codellama"}.Debug(context.Background(), "", request)
		require.NoError(t, err)
		require.Equal(t, "fixed", resp.Debugging)
		require.Contains(t, fake.LastRequest().Prompt, "Reported error: TypeError")
	})
}
