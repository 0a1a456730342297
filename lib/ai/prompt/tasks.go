package prompt

import (
	"fmt"
	"strings"
)

const markdownRule = "Format your entire answer in Markdown. Use fenced code blocks with the language tag for any code."

var chatPreamble = "You are a helpful AI assistant. In your reply:\n" +
	numbered(
		"Answer the user's latest message, taking the conversation so far into account",
		"Format your answer in Markdown, with fenced code blocks for any code",
	) + "\n"

func chat(history []Turn, message string) string {
	sb := strings.Builder{}
	sb.WriteString(chatPreamble)
	for _, turn := range history {
		switch turn.Role {
		case RoleUser:
			sb.WriteString("User: ")
		case RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			continue
		}
		sb.WriteString(strings.TrimSpace(turn.Content))
		sb.WriteString("\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(message)
	sb.WriteString("\nAssistant:")
	return sb.String()
}

// code сохраняет отступы, убираются только пустые строки по краям
func (p Params) code() string {
	return strings.Trim(p[ParamCode], "\r\n")
}

func codeAnalyze(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("You are an expert %s developer. Analyze the following %s code.\n\n%s\n\n", language, language, codeBlock(language, p.code())) +
		"Provide:\n" +
		numbered(
			"A short summary of what the code does",
			"Potential bugs or edge cases that are not handled",
			"Code quality issues (readability, naming, structure)",
			"Performance considerations",
			"Security concerns, if any",
			"Concrete suggestions for improvement",
		) + "\n" + markdownRule
}

func codeOptimize(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("You are an expert %s developer. Optimize the following %s code.\n\n%s\n\n", language, language, codeBlock(language, p.code())) +
		optionalLine("Optimization goal", p.Get(ParamGoal)) +
		"Provide:\n" +
		numbered(
			"The optimized version of the code",
			"An explanation of every change you made",
			"The expected impact on performance, memory usage and readability",
		) + "\n" + markdownRule
}

func codeDebug(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("You are an expert %s developer. Debug the following %s code.\n\n%s\n\n", language, language, codeBlock(language, p.code())) +
		optionalLine("Reported error", p.Get(ParamError)) +
		"Provide:\n" +
		numbered(
			"The root cause of the problem",
			"The corrected version of the code",
			"An explanation of the fix",
			"Advice on preventing similar bugs",
		) + "\n" + markdownRule
}

func challengeHeader(p Params) string {
	return fmt.Sprintf("Challenge: %s\n\n", p.Get(ParamChallengeTitle)) +
		optionalLine("Difficulty", p.Get(ParamChallengeDifficulty)) +
		fmt.Sprintf("Description:\n%s\n\n", p.Get(ParamChallengeDescription)) +
		optionalBlock("Examples", p.Get(ParamChallengeExamples))
}

func optionalBlock(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s:\n%s\n\n", label, value)
}

func challengeEvaluate(p Params) string {
	language := p.Get(ParamLanguage)
	return "You are a programming instructor reviewing a solution to a coding challenge.\n\n" +
		challengeHeader(p) +
		fmt.Sprintf("Submitted solution:\n%s\n\n", codeBlock(language, p.code())) +
		"Provide:\n" +
		numbered(
			"Whether the solution is correct, with reasoning",
			"Time and space complexity",
			"Edge cases the solution misses",
			"Code style and readability feedback",
			"Suggestions for improvement",
			"A score from 1 to 10",
		) + "\n" + markdownRule
}

func challengeAnalyze(p Params) string {
	language := p.Get(ParamLanguage)
	return "You are a code execution checker. Decide whether the submitted code correctly solves the challenge.\n\n" +
		challengeHeader(p) +
		fmt.Sprintf("Submitted code:\n%s\n\n", codeBlock(language, p.code())) +
		"Steps:\n" +
		numbered(
			"Mentally execute the code against the challenge requirements",
			"Decide whether it produces the correct result for all reasonable inputs",
			"Summarize the outcome in one or two sentences",
		) + "\n" +
		"Respond with ONLY a JSON object of the form {\"success\": boolean, \"message\": string}. " +
		"Do not add any explanation, prose or Markdown before or after the JSON object."
}

func (p Params) document() string {
	return strings.TrimSpace(p[ParamDocument])
}

func documentAnalyze(p Params) string {
	return fmt.Sprintf("Analyze the following document.\n\nDocument:\n\"\"\"\n%s\n\"\"\"\n\n", p.document()) +
		"Provide:\n" +
		numbered(
			"A concise summary",
			"The key points and main arguments",
			"Important facts, figures and named entities",
			"The overall tone and intended audience",
			"Open questions or gaps in the document",
		) + "\n" + markdownRule
}

func documentQuestion(p Params) string {
	return fmt.Sprintf("Answer a question using only the document below.\n\nDocument:\n\"\"\"\n%s\n\"\"\"\n\n", p.document()) +
		fmt.Sprintf("Question: %s\n\n", p.Get(ParamQuestion)) +
		"Provide:\n" +
		numbered(
			"A direct answer to the question",
			"The passages of the document that support the answer",
			"A note if the document does not contain enough information",
		) + "\n" + markdownRule
}

func docGen(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("Generate documentation for the following %s code.\n\n%s\n\n", language, codeBlock(language, p.code())) +
		optionalLine("Documentation style", p.Get(ParamStyle)) +
		"Provide:\n" +
		numbered(
			"An overview of the purpose of the code",
			"A description of every function, class or method with parameters and return values",
			"Usage examples",
			"Dependencies and requirements",
			"Notes on edge cases and limitations",
		) + "\n" + markdownRule
}

func nlpGenerate(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("Write %s code for the following task.\n\nTask description:\n%s\n\n", language, p.Get(ParamDescription)) +
		"Provide:\n" +
		numbered(
			"The complete, working code",
			"A brief explanation of how it works",
			"Example usage",
		) + "\n" + markdownRule
}

func nlpTests(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("Write unit tests for the following %s code.\n\n%s\n\n", language, codeBlock(language, p.code())) +
		optionalLine("Test framework", p.Get(ParamFramework)) +
		"Provide:\n" +
		numbered(
			"Complete test code covering normal cases",
			"Tests for edge cases and invalid input",
			"A short explanation of what each test verifies",
		) + "\n" + markdownRule
}

func nlpImprove(p Params) string {
	language := p.Get(ParamLanguage)
	return fmt.Sprintf("Improve the following %s code.\n\n%s\n\n", language, codeBlock(language, p.code())) +
		optionalLine("Requirements", p.Get(ParamRequirements)) +
		"Provide:\n" +
		numbered(
			"The improved code",
			"A list of the changes made",
			"Why each change is an improvement",
		) + "\n" + markdownRule
}

func webpageSummary(p Params) string {
	return fmt.Sprintf("Summarize the following webpage.\n\nTitle: %s\nURL: %s\n\nContent:\n\"\"\"\n%s\n\"\"\"\n\n",
		p.Get(ParamTitle), p.Get(ParamURL), strings.TrimSpace(p[ParamContent])) +
		"Provide:\n" +
		numbered(
			"A short summary of the page",
			"The key points",
			"Who the page is useful for",
		) + "\n" + markdownRule
}

func voiceChat(p Params) string {
	return chat(nil, p.Get(ParamTranscription))
}
