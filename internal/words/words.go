// internal/words/words.go
//
// Provides the two dictionaries the solver works from.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to the embedded defaults.
//   - Keep both lists ordered: guess order decides ties between equally scored guesses.
//   - Supply lookups (IsAllowed, IsAnswer), RandomAnswer and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "guesses": answers followed by the extra allowed words, deduplicated.
//
// Loading behavior (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and extra guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and guesses.
//   3. Otherwise fall back to the embedded assets.Answers / assets.Allowed.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrEmptyAnswers is returned when the answer list ends up empty.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Source names optional word-list files. Empty fields select embedded data.
type Source struct {
	AnswersFile string
	AllowedFile string
}

// Dictionary holds the loaded, validated word lists.
type Dictionary struct {
	Answers []game.Word // canonical answers, file order
	Guesses []game.Word // answers ∪ allowed, answers first

	answerSet  game.WordSet
	allowedSet game.WordSet
}

// Load reads the word lists described by src.
func Load(src Source) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: embedded defaults
	default:
		ansList = normalizeLines(strings.Split(assets.Answers, "\n"))
		allowList = normalizeLines(strings.Split(assets.Allowed, "\n"))
	}

	return New(ansList, allowList)
}

// New builds a Dictionary from in-memory lists. Invalid and duplicate
// entries are dropped; answers are always guessable.
func New(answers, allowed []string) (*Dictionary, error) {
	d := &Dictionary{}
	d.Answers = dedup(toWords(answers))
	if len(d.Answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	d.Guesses = dedup(append(append([]game.Word{}, d.Answers...), toWords(allowed)...))
	d.answerSet = game.NewWordSet(d.Answers)
	d.allowedSet = game.NewWordSet(d.Guesses)
	return d, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == game.WordLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// normalizeLines keeps the valid lowercase 5-letter words of lines.
func normalizeLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == game.WordLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toWords parses the valid entries of list.
func toWords(list []string) []game.Word {
	out := make([]game.Word, 0, len(list))
	for _, s := range list {
		if w, err := game.ParseWord(strings.TrimSpace(s)); err == nil {
			out = append(out, w)
		}
	}
	return out
}

// dedup drops repeated words, keeping first occurrences in order.
func dedup(list []game.Word) []game.Word {
	seen := make(game.WordSet, len(list))
	out := list[:0]
	for _, w := range list {
		if seen.Contains(w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() game.Word {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(d.Answers))))
	return d.Answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ allowed).
func (d *Dictionary) IsAllowed(w game.Word) bool { return d.allowedSet.Contains(w) }

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w game.Word) bool { return d.answerSet.Contains(w) }

// Allowed exposes the guess lookup set.
func (d *Dictionary) Allowed() game.WordSet { return d.allowedSet }

// Stats returns counts of loaded words: (answers, guesses).
func (d *Dictionary) Stats() (answersCount int, guessCount int) {
	return len(d.Answers), len(d.Guesses)
}
