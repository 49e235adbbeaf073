package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		hasError bool
	}{
		{"crane", "crane", false},
		{"CRANE", "crane", false},
		{"CrAnE", "crane", false},
		{"cran", "", true},
		{"cranes", "", true},
		{"cr_ne", "", true},
		{"cr4ne", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := ParseWord(tt.input)
			if tt.hasError {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "word", pe.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		input    string
		expected Feedback
		hasError bool
	}{
		{"_____", Feedback{}, false},
		{"ggggg", Solved, false},
		{"gy_Y_", Feedback{MarkCorrect, MarkPresent, MarkAbsent, MarkPresent, MarkAbsent}, false},
		{"gy__", Feedback{}, true},
		{"gy__x", Feedback{}, true},
		{"gy__-", Feedback{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fb, err := ParseFeedback(tt.input)
			if tt.hasError {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "feedback", pe.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fb)
		})
	}
}

func TestParseToken(t *testing.T) {
	m, ok := ParseToken(" Correct ")
	assert.True(t, ok)
	assert.Equal(t, MarkCorrect, m)

	_, ok = ParseToken("NOT_IN_WORD_LIST")
	assert.False(t, ok)

	fb := Feedback{MarkCorrect, MarkPresent, MarkAbsent, MarkAbsent, MarkCorrect}
	assert.Equal(t, "correct,present,absent,absent,correct", fb.Tokens())
}

func TestParseWords(t *testing.T) {
	ws, err := ParseWords([]string{"abcde", "fghij"})
	require.NoError(t, err)
	assert.Equal(t, []Word{MustParseWord("abcde"), MustParseWord("fghij")}, ws)

	_, err = ParseWords([]string{"abcde", "nope"})
	assert.Error(t, err)
}

func TestWordSet(t *testing.T) {
	s := NewWordSet([]Word{MustParseWord("crane")})
	assert.True(t, s.Contains(MustParseWord("CRANE")))
	assert.False(t, s.Contains(MustParseWord("slate")))
}
