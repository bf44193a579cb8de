package dialog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vackup/internal/domain"
)

// answer returns an askFunc that writes v into the response pointer.
func answer(v interface{}, err error) askFunc {
	return func(_ survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		if err != nil {
			return err
		}
		reflect.ValueOf(response).Elem().Set(reflect.ValueOf(v))
		return nil
	}
}

func TestPrompt_PickDirectory(t *testing.T) {
	dir := t.TempDir()

	t.Run("answer becomes the only path", func(t *testing.T) {
		p := NewPrompt("")
		p.ask = answer(dir, nil)

		sel, err := p.PickDirectory(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DirectorySelection{Paths: []string{dir}}, sel)
	})

	t.Run("interrupt cancels", func(t *testing.T) {
		p := NewPrompt(dir)
		p.ask = answer(nil, terminal.InterruptErr)

		sel, err := p.PickDirectory(context.Background())
		require.NoError(t, err)
		assert.True(t, sel.Canceled)
		assert.Empty(t, sel.Paths)
	})

	t.Run("blank answer cancels", func(t *testing.T) {
		p := NewPrompt("")
		p.ask = answer("  ", nil)

		sel, err := p.PickDirectory(context.Background())
		require.NoError(t, err)
		assert.True(t, sel.Canceled)
	})

	t.Run("prompt failure", func(t *testing.T) {
		p := NewPrompt("")
		p.ask = answer(nil, errors.New("not a terminal"))

		_, err := p.PickDirectory(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a terminal")
	})

	t.Run("default is offered", func(t *testing.T) {
		p := NewPrompt(dir)
		p.ask = func(prompt survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			input, ok := prompt.(*survey.Input)
			require.True(t, ok)
			assert.Equal(t, dir, input.Default)
			*(response.(*string)) = input.Default
			return nil
		}

		sel, err := p.PickDirectory(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, sel.Paths)
	})
}

func TestConfirm(t *testing.T) {
	ok, err := confirm(answer(true, nil), "Stop containers?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = confirm(answer(nil, terminal.InterruptErr), "Stop containers?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = confirm(answer(nil, errors.New("eof")), "Stop containers?", true)
	require.Error(t, err)
}

func TestSuggestDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backups"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup.txt"), nil, 0o600))

	got := SuggestDirectories(filepath.Join(dir, "b"))
	assert.Equal(t, []string{
		filepath.Join(dir, "backups") + string(filepath.Separator),
		filepath.Join(dir, "bin") + string(filepath.Separator),
	}, got)

	assert.Empty(t, SuggestDirectories(filepath.Join(dir, "zzz")))
}

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	assert.NoError(t, validateDirectory(dir))
	assert.NoError(t, validateDirectory(""))
	assert.Error(t, validateDirectory(file))
	assert.Error(t, validateDirectory(filepath.Join(dir, "missing")))
	assert.Error(t, validateDirectory(42))
}

func TestStatic(t *testing.T) {
	sel, err := Static("/srv/backups").PickDirectory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/backups"}, sel.Paths)

	sel, err = Static("").PickDirectory(context.Background())
	require.NoError(t, err)
	assert.True(t, sel.Canceled)
}
