package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/vackup/internal/adapters/out/notify"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

// terminalNotifier prints notifications with the CLI theme.
func terminalNotifier(w io.Writer) *notify.Terminal {
	return notify.NewTerminal(w, styles.RenderSuccess, styles.RenderError)
}

// isInteractiveTerminal reports whether stdout is a terminal able to run
// prompts and the panel.
func isInteractiveTerminal() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
