package panel

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/components"
	"github.com/bnema/vackup/internal/boundaries/in"
	"github.com/bnema/vackup/internal/boundaries/out"
)

var _ out.Notifier = (*ToastSink)(nil)

// ToastSink is a notifier that shows messages inside a running panel.
// Messages sent before a program is attached are queued and flushed on Attach.
type ToastSink struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []tea.Msg
}

// NewToastSink creates an unattached sink.
func NewToastSink() *ToastSink {
	return &ToastSink{}
}

// Attach routes subsequent notifications to send, usually tea.Program.Send.
func (s *ToastSink) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.send = send
	s.mu.Unlock()

	for _, msg := range pending {
		send(msg)
	}
}

// Detach stops delivery. Later notifications are dropped.
func (s *ToastSink) Detach() {
	s.mu.Lock()
	s.send = func(tea.Msg) {}
	s.mu.Unlock()
}

// Error shows an error toast.
func (s *ToastSink) Error(msg string) {
	s.deliver(ToastMsg{Kind: components.ToastError, Message: msg})
}

// Success shows a success toast.
func (s *ToastSink) Success(msg string) {
	s.deliver(ToastMsg{Kind: components.ToastSuccess, Message: msg})
}

func (s *ToastSink) takePending() []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pending
	s.pending = nil
	return pending
}

func (s *ToastSink) deliver(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	if send == nil {
		s.pending = append(s.pending, msg)
	}
	s.mu.Unlock()

	if send != nil {
		send(msg)
	}
}

// Run starts the panel and blocks until the user quits.
func Run(
	ctx context.Context,
	svc in.VolumeService,
	picker out.DirectoryPicker,
	sink *ToastSink,
	initialPath string,
	opts ...tea.ProgramOption,
) error {
	m := New(ctx, svc, picker, initialPath)
	if sink != nil {
		// Send blocks until the event loop runs, so early toasts go in
		// the initial model instead.
		for _, msg := range sink.takePending() {
			if toast, ok := msg.(ToastMsg); ok {
				m.pushToast(components.Toast(toast))
			}
		}
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	if sink != nil {
		sink.Attach(p.Send)
		defer sink.Detach()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel exited: %w", err)
	}
	return nil
}
