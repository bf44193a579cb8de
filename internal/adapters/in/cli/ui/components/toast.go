package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/styles"
)

// ToastKind is the severity of a toast.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastInfo
)

// Toast is a transient notification shown under the volume table.
type Toast struct {
	Kind    ToastKind
	Message string
}

var toastStyles = map[ToastKind]struct {
	icon  string
	style lipgloss.Style
}{
	ToastSuccess: {icon: styles.IconSuccess, style: styles.Theme.Success},
	ToastError:   {icon: styles.IconError, style: styles.Theme.Error},
	ToastInfo:    {icon: styles.IconInfo, style: styles.Theme.Info},
}

// View renders the toast on one line per message line.
func (t Toast) View() string {
	cfg, ok := toastStyles[t.Kind]
	if !ok {
		cfg = toastStyles[ToastInfo]
	}
	return cfg.style.Render(cfg.icon + " " + t.Message)
}

// RenderToasts renders toasts oldest first.
func RenderToasts(toasts []Toast) string {
	views := make([]string, len(toasts))
	for i, t := range toasts {
		views[i] = t.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
