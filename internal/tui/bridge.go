package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
// A no-op until SetProgram has been called.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// forwardProgress drains a research run's progress channel and republishes
// each update as a ProgressMsg, closing with a ProgressDoneMsg. It returns
// when the channel is closed by the run command.
func forwardProgress(ref *programRef, updates <-chan agent.ProgressUpdate, generation uint64) {
	for update := range updates {
		ref.Send(ProgressMsg{Update: update, Generation: generation})
	}
	ref.Send(ProgressDoneMsg{Generation: generation})
}
