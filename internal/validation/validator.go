package validation

import (
	"regexp"
	"strings"

	"github.com/comment-board-api/internal/models"
)

// Matches text made entirely of whitespace and/or Unicode punctuation.
// Such a comment carries no content and is rejected.
var noContentRegex = regexp.MustCompile(`^[\s\p{P}]+$`)

// NormalizeBody validates and normalizes a submitted comment body.
// The body is trimmed, rejected if empty or whitespace/punctuation
// only, and truncated to MaxBodyLen runes. Over-length input is
// truncated, never rejected.
func NormalizeBody(body string) (string, *models.ValidationError) {
	trimmed := strings.TrimSpace(body)

	if trimmed == "" || noContentRegex.MatchString(trimmed) {
		return "", models.NewValidationError(models.MsgEmptyComment)
	}

	return truncate(trimmed, models.MaxBodyLen), nil
}

// NormalizeAuthor normalizes a submitted author name. A missing or
// blank-after-trim name becomes the anonymous sentinel; any other
// value is kept verbatim, so "0" stays "0".
func NormalizeAuthor(author string) string {
	trimmed := strings.TrimSpace(author)
	if trimmed == "" {
		return models.AnonymousAuthor
	}
	return truncate(trimmed, models.MaxAuthorLen)
}

// truncate cuts s to at most max runes
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
