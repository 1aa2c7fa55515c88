package testutil

import (
	"context"
)

// Prompter answers from a map keyed by prompt text and records what it was
// asked. Unknown prompts get the default value.
type Prompter struct {
	Answers map[string]string
	Err     error
	Asked   []string
}

// NewPrompter creates a prompter with the given answers
func NewPrompter(answers map[string]string) *Prompter {
	if answers == nil {
		answers = map[string]string{}
	}
	return &Prompter{Answers: answers}
}

func (p *Prompter) PromptValue(prompt, defaultValue string) (string, error) {
	p.Asked = append(p.Asked, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	if answer, ok := p.Answers[prompt]; ok {
		return answer, nil
	}
	return defaultValue, nil
}

// Confirmer gives a fixed answer and records prompts
type Confirmer struct {
	Answer  bool
	Err     error
	Prompts []string
}

func (c *Confirmer) Confirm(prompt string) (bool, error) {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer, c.Err
}

// Runner records commands and returns configured exit codes
type Runner struct {
	Codes    map[string]int
	Errs     map[string]error
	Commands []string
	Dirs     []string

	wd *WorkingDir
}

// NewRunner creates a runner. When wd is non-nil the runner also records
// the working directory each command ran in.
func NewRunner(wd *WorkingDir) *Runner {
	return &Runner{Codes: map[string]int{}, Errs: map[string]error{}, wd: wd}
}

func (r *Runner) Run(_ context.Context, command string) (int, error) {
	r.Commands = append(r.Commands, command)
	if r.wd != nil {
		r.Dirs = append(r.Dirs, r.wd.Current)
	}
	if err := r.Errs[command]; err != nil {
		return -1, err
	}
	return r.Codes[command], nil
}

// WorkingDir tracks a simulated process working directory
type WorkingDir struct {
	Current string
	Visited []string
	GetErr  error
	ChdirTo map[string]error
}

// NewWorkingDir starts in dir
func NewWorkingDir(dir string) *WorkingDir {
	return &WorkingDir{Current: dir, ChdirTo: map[string]error{}}
}

func (w *WorkingDir) Getwd() (string, error) {
	if w.GetErr != nil {
		return "", w.GetErr
	}
	return w.Current, nil
}

func (w *WorkingDir) Chdir(dir string) error {
	if err := w.ChdirTo[dir]; err != nil {
		return err
	}
	w.Visited = append(w.Visited, dir)
	w.Current = dir
	return nil
}
