package testutil

import (
	"io"
)

// ScriptedInput implements commands.Input by replaying fixed lines.
type ScriptedInput struct {
	lines   []string
	Prompts []string
}

// NewScriptedInput creates input that returns lines in order, then io.EOF.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// ReadLine records the prompt and returns the next scripted line.
func (s *ScriptedInput) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Remaining returns the number of unread lines.
func (s *ScriptedInput) Remaining() int {
	return len(s.lines)
}
