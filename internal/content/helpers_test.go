package content_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alkime/postgen/internal/llm"
)

// scriptedCompleter replays answers in order and records every prompt it saw.
type scriptedCompleter struct {
	mu      sync.Mutex
	answers []answer
	prompts []string
}

type answer struct {
	text string
	err  error
}

func newScripted(answers ...answer) *scriptedCompleter {
	return &scriptedCompleter{answers: answers}
}

func ok(text string) answer { return answer{text: text} }

func fail(err error) answer { return answer{err: err} }

var errTransport = errors.New("connection reset")

var testNow = time.Date(2025, time.March, 14, 16, 47, 0, 0, time.UTC)

func (s *scriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", llm.ErrNoChoices
	}

	next := s.answers[0]
	s.answers = s.answers[1:]

	return next.text, next.err
}

func (s *scriptedCompleter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.prompts)
}
