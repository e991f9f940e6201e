package usecase

import (
	"strings"

	"kakao-support-chatbot/internal/chat"
)

// unsafeSubstrings is the fixed anti-injection heuristic: URL-like
// fragments, markup brackets, and script tokens.
var unsafeSubstrings = []string{
	"http://",
	"https://",
	"www.",
	"<",
	">",
	"script",
	"javascript",
}

// ValidateUserInput checks one utterance against the content rules.
// Pure function: deterministic for identical input, no side effects.
// The denylist is configuration, not fixed logic.
func ValidateUserInput(input string, deniedTerms []string) chat.ValidationResult {
	if input == "" {
		return chat.ValidationResult{Valid: false, Message: chat.MsgInvalidInput}
	}

	length := len([]rune(input))
	if length < 1 {
		return chat.ValidationResult{Valid: false, Message: chat.MsgTooShort}
	}
	if length > 1000 {
		return chat.ValidationResult{Valid: false, Message: chat.MsgTooLong}
	}

	lower := strings.ToLower(input)
	for _, s := range unsafeSubstrings {
		if strings.Contains(lower, s) {
			return chat.ValidationResult{Valid: false, Message: chat.MsgUnsafeInput}
		}
	}

	for _, term := range deniedTerms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return chat.ValidationResult{Valid: false, Message: chat.MsgProfanity}
		}
	}

	return chat.ValidationResult{Valid: true, Message: chat.MsgValidInput}
}
