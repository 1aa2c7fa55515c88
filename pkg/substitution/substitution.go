// Package substitution replaces @@NAME@@ tokens in text.
//
// A token is everything between one "@@" marker and the next. Known names are
// looked up in a types.Mapping; unknown names are resolved by asking a
// types.Prompter, and the answer is stored back into the mapping so every
// later occurrence reuses it. Substituted values are never rescanned, and an
// opening marker without a closing one is copied through untouched.
package substitution

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/rs/zerolog"
)

// Marker delimits a substitution token on both sides
const Marker = "@@"

// Engine performs token substitution, prompting for unknown variables
type Engine struct {
	prompter types.Prompter
	logger   zerolog.Logger
}

// New creates an Engine that resolves unknown variables through prompter
func New(prompter types.Prompter) *Engine {
	return &Engine{
		prompter: prompter,
		logger:   logging.GetLogger("substitution"),
	}
}

// PromptFor returns the prompt shown when variable name has no value
func PromptFor(name string) string {
	return fmt.Sprintf("enter substitution value for variable %s%s%s", Marker, name, Marker)
}

// Substitute returns text with every complete token replaced.
//
// mapping may grow as a side effect. The only error source is the prompter
// failing to deliver an answer; the partially processed text is discarded.
func (e *Engine) Substitute(text string, mapping types.Mapping) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		start := strings.Index(rest, Marker)
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+len(Marker):], Marker)
		if end < 0 {
			break
		}
		end += start + len(Marker)

		b.WriteString(rest[:start])
		name := rest[start+len(Marker) : end]

		value, ok := mapping[name]
		if !ok {
			answer, err := e.prompter.PromptValue(PromptFor(name), "")
			if err != nil {
				return "", err
			}
			e.logger.Debug().Str("variable", name).Msg("Resolved variable interactively")
			mapping[name] = answer
			value = answer
		}
		b.WriteString(value)

		rest = rest[end+len(Marker):]
	}
	b.WriteString(rest)

	return b.String(), nil
}
