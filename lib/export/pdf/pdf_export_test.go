package pdfexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDocumentation(t *testing.T) {
	t.Run(`pdf rendered check`, func(t *testing.T) {
		doc := "# Overview\n\nAdds two **numbers**.\n\n- `a` first\n- `b` second\n\n```js\nfunction add(a, b) {\n\treturn a + b\n}\n```\n"
		data, err := GenerateDocumentation("add.js", doc)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run(`empty title check`, func(t *testing.T) {
		data, err := GenerateDocumentation("", "text")
		require.NoError(t, err)
		require.NotEmpty(t, data)
	})
}

func TestStripInline(t *testing.T) {
	require.Equal(t, "bold and code", stripInline("**bold** and `code`"))
}
