package utils

import (
	"fmt"
	"strings"

	"github.com/yack-order/toyo-discord-bot/model"
)

const (
	// Discord rejects messages over 2000 characters; 1950 leaves headroom for
	// formatting the platform adds around the content.
	messageLimit = 1950
	truncateAt   = 1922

	truncationMarker = "\n **ERROR**: Text too long."
)

// FormatMarkdown renders a record as one "**label:** value" line per field.
// Underscores in labels become spaces and nil or empty values render as N/A.
// Output over the message limit is truncated and tagged with a fixed marker.
func FormatMarkdown(rec model.Record) string {
	if len(rec) == 0 {
		return "Invalid data or no data to display."
	}

	var b strings.Builder
	for _, f := range rec {
		label := strings.ReplaceAll(f.Label, "_", " ")
		b.WriteString(fmt.Sprintf("**%s:** %s\n", label, renderValue(f.Value)))
	}

	markdown := b.String()
	if runes := []rune(markdown); len(runes) > messageLimit {
		markdown = string(runes[:truncateAt]) + truncationMarker
	}
	return markdown
}

// FormatLines renders a plain list of lines, truncating like FormatMarkdown.
func FormatLines(lines []string) string {
	if len(lines) == 0 {
		return "Invalid data or no data to display."
	}
	markdown := strings.Join(lines, "\n")
	if runes := []rune(markdown); len(runes) > messageLimit {
		markdown = string(runes[:truncateAt]) + truncationMarker
	}
	return markdown
}

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case string:
		if val == "" {
			return "N/A"
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}

// SplitMarkdown splits s into a first chunk that fits within the message
// limit and the remainder. The split lands on the last line boundary at or
// before the limit, falling back to a hard cut when the first chunk has no
// newline at all. Inputs within the limit come back whole with an empty
// remainder.
func SplitMarkdown(s string) (first, rest string) {
	runes := []rune(s)
	if len(runes) <= messageLimit {
		return s, ""
	}

	head := runes[:messageLimit]
	cut := -1
	for i := len(head) - 1; i >= 0; i-- {
		if head[i] == '\n' {
			cut = i
			break
		}
	}
	if cut < 0 {
		return string(head), string(runes[messageLimit:])
	}
	return string(runes[:cut]), string(runes[cut+1:])
}

// TitleCase uppercases the first letter of each space-separated word.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// JoinTrimmed joins the trimmed elements with "; ".
func JoinTrimmed(items []string) string {
	if len(items) == 0 {
		return ""
	}
	trimmed := make([]string, len(items))
	for i, item := range items {
		trimmed[i] = strings.TrimSpace(item)
	}
	return strings.Join(trimmed, "; ")
}
