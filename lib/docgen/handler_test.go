package docgenhandler

import (
	"bytes"
	"context"
	"testing"

	ollamafake "devassist-backend/lib/ai/ollama/fake"
	docgenapimodels "devassist-backend/models/api/docgen"

	"github.com/stretchr/testify/require"
)

func TestDocGen(t *testing.T) {
	t.Run(`generate with style check`, func(t *testing.T) {
		fake := ollamafake.New("# add")
		resp, err := impl{client: fake, model: "codellama"}.Generate(context.Background(), "", docgenapimodels.GenerateRequest{
			Code:     "function add(a,b){return a+b}",
			Language: "JavaScript",
			Style:    "JSDoc",
		})
		require.NoError(t, err)
		require.Equal(t, "# add", resp.Documentation)
		require.Contains(t, fake.LastRequest().Prompt, "Documentation style: JSDoc")
		require.Contains(t, fake.LastRequest().Prompt, "```javascript\n")
	})

	t.Run(`export pdf check`, func(t *testing.T) {
		data, err := impl{}.ExportPDF(docgenapimodels.ExportRequest{Documentation: "# add\n\nAdds numbers."})
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})
}
