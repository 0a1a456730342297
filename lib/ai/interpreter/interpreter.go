package interpreter

import (
	"encoding/json"
	"regexp"
	"strings"
)

const FallbackMessage = "Unable to determine code execution status"

type Kind string

const (
	KindText Kind = "text"
	KindJSON Kind = "json"
)

type Result struct {
	Kind  Kind
	Text  string
	Value map[string]interface{}
}

// Outcome структурированный ответ проверки решения задачи
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Fallback() Outcome {
	return Outcome{Success: false, Message: FallbackMessage}
}

var fencedJSON = regexp.MustCompile("(?is)```json[ \t]*\\r?\\n?(.*?)```")

// Text возвращает ответ модели без изменений, фронтенд рендерит markdown
func Text(raw string) Result {
	return Result{Kind: KindText, Text: raw}
}

// Structured извлекает JSON-объект из ответа, ok=false если объект не найден или не разобран
func Structured(raw string) (result Result, ok bool) {
	value, ok := ExtractJSON(raw)
	if !ok {
		return Result{Kind: KindText, Text: raw}, false
	}
	return Result{Kind: KindJSON, Text: raw, Value: value}, true
}

// ExtractJSON сначала ищет блок ```json, затем первый сбалансированный {...}.
// Если выбранный кандидат не разобрался, другие не пробуются
func ExtractJSON(raw string) (map[string]interface{}, bool) {
	candidate, found := fencedBlock(raw)
	if !found {
		candidate, found = firstObjectSpan(raw)
	}
	if !found {
		return nil, false
	}
	value := map[string]interface{}{}
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, false
	}
	return value, true
}

// Evaluation не возвращает ошибок: все, кроме объекта с булевым success,
// превращается в Fallback()
func Evaluation(raw string) Outcome {
	value, ok := ExtractJSON(raw)
	if !ok {
		return Fallback()
	}
	success, ok := value["success"].(bool)
	if !ok {
		return Fallback()
	}
	message, _ := value["message"].(string)
	return Outcome{Success: success, Message: message}
}

func fencedBlock(raw string) (string, bool) {
	match := fencedJSON.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// firstObjectSpan первый {...} со сбалансированными скобками, скобки внутри строк не считаются
func firstObjectSpan(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for k := start; k < len(raw); k++ {
		ch := raw[k]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : k+1], true
			}
		}
	}
	return "", false
}
