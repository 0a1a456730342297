package prompt

import (
	"fmt"
	"strings"
)

type TaskKind string

const (
	KindChat              TaskKind = "chat"
	KindCodeAnalyze       TaskKind = "code_analyze"
	KindCodeOptimize      TaskKind = "code_optimize"
	KindCodeDebug         TaskKind = "code_debug"
	KindChallengeEvaluate TaskKind = "challenge_evaluate"
	KindChallengeAnalyze  TaskKind = "challenge_analyze"
	KindDocumentAnalyze   TaskKind = "document_analyze"
	KindDocumentQuestion  TaskKind = "document_question"
	KindDocGen            TaskKind = "docgen"
	KindNLPGenerate       TaskKind = "nlp_generate"
	KindNLPTests          TaskKind = "nlp_tests"
	KindNLPImprove        TaskKind = "nlp_improve"
	KindWebpageSummary    TaskKind = "webpage_summary"
	KindVoiceChat         TaskKind = "voice_chat"
)

// ключи параметров
const (
	ParamMessage              = "message"
	ParamCode                 = "code"
	ParamLanguage             = "language"
	ParamGoal                 = "goal"
	ParamError                = "error"
	ParamChallengeID          = "challenge_id"
	ParamChallengeTitle       = "challenge_title"
	ParamChallengeDescription = "challenge_description"
	ParamChallengeDifficulty  = "challenge_difficulty"
	ParamChallengeExamples    = "challenge_examples"
	ParamDocument             = "document"
	ParamQuestion             = "question"
	ParamStyle                = "style"
	ParamDescription          = "description"
	ParamFramework            = "framework"
	ParamRequirements         = "requirements"
	ParamTitle                = "title"
	ParamURL                  = "url"
	ParamContent              = "content"
	ParamTranscription        = "transcription"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role
	Content string
}

type Params map[string]string

// Get значение без пробелов по краям, пустая строка если ключа нет
func (p Params) Get(key string) string {
	return strings.TrimSpace(p[key])
}

// Request после создания не меняется, Build его не модифицирует
type Request struct {
	Kind    TaskKind
	Params  Params
	History []Turn
	Model   string
}

// Build собирает промпт для типа задачи. Обязательные параметры проверяются
// до вызова
func Build(req Request) string {
	p := req.Params
	switch req.Kind {
	case KindChat:
		return chat(req.History, p.Get(ParamMessage))
	case KindCodeAnalyze:
		return codeAnalyze(p)
	case KindCodeOptimize:
		return codeOptimize(p)
	case KindCodeDebug:
		return codeDebug(p)
	case KindChallengeEvaluate:
		return challengeEvaluate(p)
	case KindChallengeAnalyze:
		return challengeAnalyze(p)
	case KindDocumentAnalyze:
		return documentAnalyze(p)
	case KindDocumentQuestion:
		return documentQuestion(p)
	case KindDocGen:
		return docGen(p)
	case KindNLPGenerate:
		return nlpGenerate(p)
	case KindNLPTests:
		return nlpTests(p)
	case KindNLPImprove:
		return nlpImprove(p)
	case KindWebpageSummary:
		return webpageSummary(p)
	case KindVoiceChat:
		return voiceChat(p)
	}
	return p.Get(ParamMessage)
}

func codeBlock(language, code string) string {
	return fmt.Sprintf("```%s\n%s\n```", strings.ToLower(language), code)
}

// optionalLine "label: value\n\n" или пустая строка для пустого значения
func optionalLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s\n\n", label, value)
}

func numbered(items ...string) string {
	sb := strings.Builder{}
	for k, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", k+1, item)
	}
	return sb.String()
}
