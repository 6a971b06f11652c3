// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pinentry

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user abandons the prompt.
var ErrCancelled = errors.New("PIN entry cancelled")

// DefaultLabel is shown before the masked digits.
const DefaultLabel = "PIN: "

// Prompt reads a PIN from Input, writing the prompt to Output.
type Prompt struct {
	Input  io.Reader
	Output io.Writer
	Label  string
}

// NewPrompt returns a Prompt on stdin and stderr.
func NewPrompt() *Prompt {
	return &Prompt{Input: os.Stdin, Output: os.Stderr, Label: DefaultLabel}
}

// ReadPIN prompts for and returns a PIN. It blocks until the user
// submits, enters MaxDigits digits, cancels, or ctx is done.
func (prompt *Prompt) ReadPIN(ctx context.Context) (uint64, error) {
	label := prompt.Label
	if label == "" {
		label = DefaultLabel
	}
	if file, ok := prompt.Input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return prompt.readTerminal(ctx, label)
	}
	return prompt.readLine(label)
}

func (prompt *Prompt) readTerminal(ctx context.Context, label string) (uint64, error) {
	program := tea.NewProgram(newModel(label),
		tea.WithInput(prompt.Input),
		tea.WithOutput(prompt.Output),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("running PIN prompt: %w", err)
	}
	result := final.(model)
	if result.cancelled {
		return 0, ErrCancelled
	}
	return result.pin(), nil
}

// readLine handles non-terminal input: one line, digits only.
func (prompt *Prompt) readLine(label string) (uint64, error) {
	fmt.Fprint(prompt.Output, label)
	line, err := bufio.NewReader(prompt.Input).ReadString('\n')
	fmt.Fprintln(prompt.Output)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading PIN: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return 0, ErrCancelled
	}
	return Parse(keepDigits(line)), nil
}
