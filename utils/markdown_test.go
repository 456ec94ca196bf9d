package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yack-order/toyo-discord-bot/model"
)

func TestFormatMarkdown(t *testing.T) {
	rec := model.Record{
		{Label: "Title", Value: "Nine Princes in Amber"},
		{Label: "Share_Count", Value: int64(3)},
		{Label: "Creator_Email", Value: nil},
		{Label: "Author", Value: ""},
	}

	got := FormatMarkdown(rec)

	assert.Equal(t, "**Title:** Nine Princes in Amber\n**Share Count:** 3\n**Creator Email:** N/A\n**Author:** N/A\n", got)
}

func TestFormatMarkdownEmptyRecord(t *testing.T) {
	assert.Equal(t, "Invalid data or no data to display.", FormatMarkdown(nil))
}

func TestFormatMarkdownTruncates(t *testing.T) {
	rec := model.Record{
		{Label: "Description", Value: strings.Repeat("x", 3000)},
	}

	got := FormatMarkdown(rec)

	assert.LessOrEqual(t, len([]rune(got)), messageLimit)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Len(t, []rune(got), truncateAt+len([]rune(truncationMarker)))
}

func TestSplitMarkdownUnderLimit(t *testing.T) {
	first, rest := SplitMarkdown("short message")
	assert.Equal(t, "short message", first)
	assert.Empty(t, rest)
}

func TestSplitMarkdownAtLineBoundary(t *testing.T) {
	line := strings.Repeat("a", 99)
	input := strings.Join([]string{line, line, line, line, line, line, line, line, line, line,
		line, line, line, line, line, line, line, line, line, line, line, line, line, line, line}, "\n")
	require.Greater(t, len(input), 1950)

	first, rest := SplitMarkdown(input)

	assert.LessOrEqual(t, len([]rune(first)), 1950)
	assert.NotEmpty(t, rest)
	// The consumed newline restored, the chunks reproduce the input.
	assert.Equal(t, input, first+"\n"+rest)
	// The split landed on a line boundary: the first chunk holds whole lines.
	for _, l := range strings.Split(first, "\n") {
		assert.Len(t, l, 99)
	}
}

func TestSplitMarkdownRepeatedSplitBoundsEveryChunk(t *testing.T) {
	line := strings.Repeat("b", 120)
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = line
	}
	input := strings.Join(lines, "\n")
	require.Greater(t, len(input), 2*1950)

	var chunks []string
	rest := input
	for rest != "" {
		var first string
		first, rest = SplitMarkdown(rest)
		chunks = append(chunks, first)
	}

	require.Greater(t, len(chunks), 2)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), 1950)
	}
	assert.Equal(t, input, strings.Join(chunks, "\n"))
}

func TestSplitMarkdownHardCut(t *testing.T) {
	input := strings.Repeat("a", 2500)

	first, rest := SplitMarkdown(input)

	assert.Len(t, first, 1950)
	assert.Equal(t, input, first+rest)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Roger Zelazny", TitleCase("roger zelazny"))
	assert.Equal(t, "British English", TitleCase("british english"))
	assert.Equal(t, "", TitleCase(""))
}

func TestJoinTrimmed(t *testing.T) {
	assert.Equal(t, "a; b; c", JoinTrimmed([]string{" a", "b ", " c "}))
	assert.Equal(t, "", JoinTrimmed(nil))
}
