// Package assets embeds the default word lists shipped with the solver.
// Each list holds one word per line; blank lines and lines starting with
// '#' are comments.
package assets

import _ "embed"

// Answers is the default answer list.
//
//go:embed answers.txt
var Answers string

// Allowed lists the extra guessable words; answers are not repeated here.
//
//go:embed allowed.txt
var Allowed string
