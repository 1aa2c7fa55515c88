package globals

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/types"
)

// Question is one step of the interactive globals setup
type Question struct {
	Subject string
	Keys    []string
	Default string
}

// Prompt renders the question text
func (q Question) Prompt() string {
	noun := "globals"
	if len(q.Keys) == 1 {
		noun = "global"
	}
	return fmt.Sprintf("enter %s (sets %s %s)", q.Subject, joinKeys(q.Keys), noun)
}

// DefaultQuestions are asked by Init
var DefaultQuestions = []Question{
	{Subject: "your name", Keys: []string{"NAME", "AUTHOR"}},
	{Subject: "your e-mail address", Keys: []string{"EMAIL", "MAIL"}},
	{Subject: "your website address", Keys: []string{"WEBSITE", "WWW", "SITE"}},
	{Subject: "your github profile address", Keys: []string{"GITHUB"}},
	{Subject: "default license", Keys: []string{"LICENSE"}, Default: "All rights reserved."},
}

// OptionalPrompter accepts empty answers without asking again
type OptionalPrompter interface {
	PromptOptional(prompt string) (string, error)
}

// Init asks each question and sets every key of a non-empty answer. When
// prompter implements OptionalPrompter, questions without a default accept
// an empty answer, which skips them. Keys whose override is declined keep
// their old value. The store is saved once at the end.
func (s *Store) Init(prompter types.Prompter, questions []Question) error {
	for _, q := range questions {
		answer, err := ask(prompter, q)
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			s.logger.Warn().Str("subject", q.Subject).Msg("Empty answer, skipping")
			continue
		}

		for _, key := range q.Keys {
			if err := s.Set(key, answer); err != nil {
				if errors.IsErrorCode(err, errors.ErrConfirmationDenied) {
					s.logger.Info().Str("key", key).Msg("Keeping existing value")
					continue
				}
				return err
			}
		}
	}
	return s.Save()
}

func ask(prompter types.Prompter, q Question) (string, error) {
	if optional, ok := prompter.(OptionalPrompter); ok && q.Default == "" {
		return optional.PromptOptional(q.Prompt())
	}
	return prompter.PromptValue(q.Prompt(), q.Default)
}

func joinKeys(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	}
	return strings.Join(keys[:len(keys)-1], ", ") + " and " + keys[len(keys)-1]
}
