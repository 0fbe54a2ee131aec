// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt provides the confirmation and input capability used by the
// cluster decorators. Interactive prompting goes through survey; non
// interactive sessions refuse every confirmation.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

// NoTTYEnv disables interactive prompting when set to any non-empty value.
const NoTTYEnv = "NO_TTY"

//go:generate $MOCKGEN -typed -source=prompt.go -destination=mock_prompt.go -package prompt Prompter

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. def is the answer on an empty reply.
	Confirm(msg string, def bool) (bool, error)
	// Input reads a single line.
	Input(msg string) (string, error)
	// Password reads a secret, asking twice when confirm is set.
	Password(msg string, confirm bool) (string, error)
}

// ErrNoTTY is returned by prompters that cannot interact with the user.
var ErrNoTTY = clierrors.NoTTY("unable to prompt for input in a non-interactive session")

// New picks the prompter for the current session: assumeYes answers yes to
// every confirmation, a session without a terminal refuses everything.
func New(assumeYes bool) Prompter {
	if assumeYes {
		return AssumeYes{}
	}
	if !Interactive() {
		return Refuse{}
	}
	return &Survey{}
}

// Interactive reports whether stdin is a terminal and NO_TTY is unset.
func Interactive() bool {
	if os.Getenv(NoTTYEnv) != "" {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Survey prompts on the process terminal.
type Survey struct {
	Options []survey.AskOpt
}

func (s *Survey) Confirm(msg string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: msg, Default: def}, &answer, s.Options...); err != nil {
		return false, translate(err)
	}
	return answer, nil
}

func (s *Survey) Input(msg string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: msg}, &answer, s.Options...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (s *Survey) Password(msg string, confirm bool) (string, error) {
	for {
		var answer string
		if err := survey.AskOne(&survey.Password{Message: msg}, &answer, s.Options...); err != nil {
			return "", translate(err)
		}
		if !confirm {
			return answer, nil
		}
		var again string
		if err := survey.AskOne(&survey.Password{Message: "Confirm " + msg}, &again, s.Options...); err != nil {
			return "", translate(err)
		}
		if answer == again {
			return answer, nil
		}
		fmt.Fprintln(os.Stderr, "Passwords do not match.")
	}
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return fmt.Errorf("prompt interrupted: %w", err)
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// AssumeYes accepts every confirmation and cannot read input.
type AssumeYes struct{}

func (AssumeYes) Confirm(string, bool) (bool, error) { return true, nil }

func (AssumeYes) Input(string) (string, error) { return "", ErrNoTTY }

func (AssumeYes) Password(string, bool) (string, error) { return "", ErrNoTTY }

// Refuse declines every confirmation and cannot read input.
type Refuse struct{}

func (Refuse) Confirm(string, bool) (bool, error) { return false, nil }

func (Refuse) Input(string) (string, error) { return "", ErrNoTTY }

func (Refuse) Password(string, bool) (string, error) { return "", ErrNoTTY }
