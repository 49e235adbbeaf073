// internal/game/engine.go
//
// Feedback codec and simulated game engine.
// Responsibilities:
//   - Score guesses using the two-pass consume-on-match algorithm.
//   - Create simulated games against a known answer.
//   - Validate and apply guesses, tracking playing → won/lost.
//
// Notes:
//   - Score never mutates the caller's answer; Word is an array, so the
//     function works on its own copy.

package game

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultMaxGuesses is the classic six-row board.
const DefaultMaxGuesses = 6

var (
	ErrGameFinished = errors.New("game finished")
	ErrNotAllowed   = errors.New("not in word list")
)

// Score computes the feedback guess receives against answer.
//
// Pass 1:
//   - Mark exact matches Correct and consume that answer letter.
//
// Pass 2, left to right:
//   - For each position still unmarked, if the letter remains anywhere in
//     the answer, mark Present and consume the leftmost remaining occurrence.
//   - Otherwise the position stays Absent.
//
// Consuming letters is what limits repeated guess letters to the number of
// copies the answer actually has.
func Score(guess, answer Word) Feedback {
	var fb Feedback
	work := answer

	for i := 0; i < WordLen; i++ {
		if guess[i] == work[i] {
			fb[i] = MarkCorrect
			work[i] = consumed
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] != MarkAbsent {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if work[j] == guess[i] {
				fb[i] = MarkPresent
				work[j] = consumed
				break
			}
		}
	}
	return fb
}

// New constructs a game with the given answer. maxGuesses <= 0 selects
// DefaultMaxGuesses. A nil allowed set accepts every well-formed word.
func New(answer Word, maxGuesses int, allowed WordSet) *Game {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	g := &Game{
		ID:         uuid.NewString(),
		Answer:     answer,
		MaxGuesses: maxGuesses,
		Guesses:    []Word{},
	}
	g.allowed = allowed
	return g
}

// ApplyGuess scores a guess and advances the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be in the allowed set, when one was given.
//
// State transitions:
//   - All marks correct → Finished, Won.
//   - Else if the guess count reaches MaxGuesses → Finished (loss).
func (g *Game) ApplyGuess(guess Word) (Feedback, State, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrGameFinished
	}
	if g.allowed != nil && !g.allowed.Contains(guess) {
		return Feedback{}, g.State(), ErrNotAllowed
	}

	fb := Score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)

	if fb.IsSolved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}
