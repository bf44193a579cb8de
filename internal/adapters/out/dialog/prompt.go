// Package dialog implements directory pickers for the export destination.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/pkg/logger"
)

var (
	_ out.DirectoryPicker = (*Prompt)(nil)
	_ out.DirectoryPicker = Static("")
)

// askFunc matches survey.AskOne.
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Prompt asks for a directory on the terminal, with path completion.
type Prompt struct {
	message string
	initial string
	ask     askFunc
}

// NewPrompt creates a terminal directory prompt. initial is offered as the
// default answer.
func NewPrompt(initial string) *Prompt {
	return &Prompt{
		message: "Export directory:",
		initial: initial,
		ask:     survey.AskOne,
	}
}

// PickDirectory asks for a single directory. Ctrl-C or an empty answer
// cancels the selection.
func (p *Prompt) PickDirectory(ctx context.Context) (domain.DirectorySelection, error) {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "adapter",
		logger.FieldAdapter: "dialog",
		logger.FieldAction:  "PickDirectory",
	})
	log := logger.FromCtx(ctx)

	prompt := &survey.Input{
		Message: p.message,
		Default: p.initial,
		Suggest: SuggestDirectories,
	}

	var answer string
	err := p.ask(prompt, &answer, survey.WithValidator(validateDirectory))
	if errors.Is(err, terminal.InterruptErr) {
		log.Debug().Msg("directory selection canceled")
		return domain.DirectorySelection{Canceled: true}, nil
	}
	if err != nil {
		return domain.DirectorySelection{}, logger.WrapErr(log, err, "directory prompt failed")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return domain.DirectorySelection{Canceled: true}, nil
	}

	abs, err := filepath.Abs(expandHome(answer))
	if err != nil {
		return domain.DirectorySelection{}, logger.WrapErr(log, err, "failed to resolve directory")
	}

	log.Debug().Str(logger.FieldPath, abs).Msg("directory selected")
	return domain.DirectorySelection{Paths: []string{abs}}, nil
}

// Confirm asks a yes/no question. Ctrl-C answers no.
func Confirm(message string, defaultYes bool) (bool, error) {
	return confirm(survey.AskOne, message, defaultYes)
}

func confirm(ask askFunc, message string, defaultYes bool) (bool, error) {
	var proceed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}

	err := ask(prompt, &proceed)
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("survey failed: %w", err)
	}
	return proceed, nil
}

// SuggestDirectories completes a partially typed path with matching directories.
func SuggestDirectories(toComplete string) []string {
	pattern := expandHome(toComplete) + "*"
	matches, _ := filepath.Glob(pattern)

	var dirs []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			continue
		}
		if strings.HasPrefix(toComplete, "~") {
			m = collapseHome(m)
		}
		dirs = append(dirs, m+string(filepath.Separator))
	}
	sort.Strings(dirs)
	return dirs
}

func validateDirectory(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a path")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(expandHome(s))
	if err != nil {
		return fmt.Errorf("%s does not exist", s)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func collapseHome(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if rest, ok := strings.CutPrefix(p, home); ok {
		return "~" + rest
	}
	return p
}
