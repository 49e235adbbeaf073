// Package daily derives a reproducible "word of the day" so simulated
// games can be replayed by date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// DateKey is the calendar day of t in UTC.
func DateKey(t time.Time) string { return t.UTC().Format(time.DateOnly) }

// Answer picks the day's answer from answers, keyed by HMAC-SHA256 of the
// date under salt. ok is false for an empty list.
func Answer(date time.Time, salt string, answers []game.Word) (w game.Word, ok bool) {
	if len(answers) == 0 {
		return w, false
	}
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(date))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return answers[seed%uint64(len(answers))], true
}
