package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allKinds = []TaskKind{
	KindChat, KindCodeAnalyze, KindCodeOptimize, KindCodeDebug,
	KindChallengeEvaluate, KindChallengeAnalyze, KindDocumentAnalyze,
	KindDocumentQuestion, KindDocGen, KindNLPGenerate, KindNLPTests,
	KindNLPImprove, KindWebpageSummary, KindVoiceChat,
}

func fullParams() Params {
	return Params{
		ParamMessage:              "hello",
		ParamCode:                 "def add(a, b):\n    return a + b",
		ParamLanguage:             "Python",
		ParamGoal:                 "speed",
		ParamError:                "TypeError",
		ParamChallengeID:          "1",
		ParamChallengeTitle:       "Two Sum",
		ParamChallengeDescription: "Find two numbers",
		ParamChallengeDifficulty:  "easy",
		ParamChallengeExamples:    "Input: [2,7] Output: [0,1]",
		ParamDocument:             "Some document text",
		ParamQuestion:             "What is it about?",
		ParamStyle:                "Google",
		ParamDescription:          "reverse a string",
		ParamFramework:            "pytest",
		ParamRequirements:         "add type hints",
		ParamTitle:                "Example",
		ParamURL:                  "https://example.com",
		ParamContent:              "Example page body",
		ParamTranscription:        "what time is it",
	}
}

func TestBuild(t *testing.T) {
	t.Run(`determinism check`, func(t *testing.T) {
		history := []Turn{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}}
		for _, kind := range allKinds {
			req := Request{Kind: kind, Params: fullParams(), History: history, Model: "llama3"}
			first := Build(req)
			second := Build(req)
			require.NotEmpty(t, first, kind)
			require.Equal(t, first, second, kind)
		}
	})

	t.Run(`chat history linearization check`, func(t *testing.T) {
		history := []Turn{
			{Role: RoleUser, Content: "What is Go?"},
			{Role: RoleAssistant, Content: "A programming language."},
		}
		result := Build(Request{Kind: KindChat, Params: Params{ParamMessage: "Who made it?"}, History: history})
		require.True(t, strings.HasSuffix(result,
			"User: What is Go?\nAssistant: A programming language.\nUser: Who made it?\nAssistant:"))
	})

	t.Run(`chat without history check`, func(t *testing.T) {
		result := Build(Request{Kind: KindChat, Params: Params{ParamMessage: "hello"}})
		require.True(t, strings.HasSuffix(result, "\n\nUser: hello\nAssistant:"))
		require.Equal(t, 1, strings.Count(result, "User: "))
		require.Less(t, strings.Index(result, "\n1. "), strings.Index(result, "User: hello"))
	})

	t.Run(`markdown instruction check`, func(t *testing.T) {
		for _, kind := range allKinds {
			result := Build(Request{Kind: kind, Params: fullParams()})
			if kind == KindChallengeAnalyze {
				require.NotContains(t, result, "Markdown.")
				require.Contains(t, result, `ONLY a JSON object of the form {"success": boolean, "message": string}`)
				continue
			}
			require.Contains(t, result, "Markdown", kind)
		}
	})

	t.Run(`numbered sub-asks check`, func(t *testing.T) {
		for _, kind := range allKinds {
			result := Build(Request{Kind: kind, Params: fullParams()})
			require.Contains(t, result, "\n1. ", kind)
			require.Contains(t, result, "\n2. ", kind)
		}
	})

	t.Run(`optional labels omitted check`, func(t *testing.T) {
		p := fullParams()
		p[ParamGoal] = ""
		p[ParamError] = "   "
		p[ParamRequirements] = ""
		p[ParamFramework] = ""
		p[ParamStyle] = ""
		p[ParamChallengeDifficulty] = ""
		p[ParamChallengeExamples] = ""

		require.NotContains(t, Build(Request{Kind: KindCodeOptimize, Params: p}), "Optimization goal")
		require.NotContains(t, Build(Request{Kind: KindCodeDebug, Params: p}), "Reported error")
		require.NotContains(t, Build(Request{Kind: KindNLPImprove, Params: p}), "Requirements:")
		require.NotContains(t, Build(Request{Kind: KindNLPTests, Params: p}), "Test framework")
		require.NotContains(t, Build(Request{Kind: KindDocGen, Params: p}), "Documentation style")
		evaluate := Build(Request{Kind: KindChallengeEvaluate, Params: p})
		require.NotContains(t, evaluate, "Difficulty")
		require.NotContains(t, evaluate, "Examples")
		require.NotContains(t, evaluate, "undefined")
	})

	t.Run(`optional labels present check`, func(t *testing.T) {
		p := fullParams()
		require.Contains(t, Build(Request{Kind: KindCodeOptimize, Params: p}), "Optimization goal: speed")
		require.Contains(t, Build(Request{Kind: KindCodeDebug, Params: p}), "Reported error: TypeError")
		require.Contains(t, Build(Request{Kind: KindNLPImprove, Params: p}), "Requirements: add type hints")
		require.Contains(t, Build(Request{Kind: KindNLPTests, Params: p}), "Test framework: pytest")
	})

	t.Run(`code indentation kept check`, func(t *testing.T) {
		result := Build(Request{Kind: KindCodeAnalyze, Params: fullParams()})
		require.Contains(t, result, "```python\ndef add(a, b):\n    return a + b\n```")
	})
}
