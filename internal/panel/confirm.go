package panel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Action identifies what a confirmation prompt is guarding.
type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
	ActionCustom
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "confirm"
	}
}

// Gate is the mandatory yes/no checkpoint in front of every mutation.
// Controllers always ask before touching the store; a false answer
// leaves state untouched. Dismissal counts as false.
type Gate interface {
	Confirm(ctx context.Context, action Action, message string) bool
}

// GateFunc adapts a plain function to the Gate interface.
type GateFunc func(ctx context.Context, action Action, message string) bool

func (f GateFunc) Confirm(ctx context.Context, action Action, message string) bool {
	return f(ctx, action, message)
}

// FixedGate answers every prompt the same way. Used by headless tooling
// (the seeder) and tests.
type FixedGate bool

func (g FixedGate) Confirm(ctx context.Context, action Action, message string) bool {
	return bool(g)
}

// PromptGate asks on a terminal-style reader/writer pair. Only one
// prompt may be outstanding at a time; callers block until answered.
// Anything other than y/yes resolves to false.
type PromptGate struct {
	mu sync.Mutex
	in *bufio.Reader
	w  io.Writer
}

func NewPromptGate(in io.Reader, w io.Writer) *PromptGate {
	return &PromptGate{in: bufio.NewReader(in), w: w}
}

func (g *PromptGate) Confirm(ctx context.Context, action Action, message string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	fmt.Fprintf(g.w, "%s [y/N]: ", message)
	line, err := g.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

type confirmKeyType struct{}

var confirmKey confirmKeyType

// WithConfirmation records the user's dialog answer on the context, for
// transports where the prompt round-trip happens out of process (the
// HTTP surface echoes the overlay dialog's answer in a header).
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmKey, confirmed)
}

// ContextGate resolves prompts from the answer carried by the context.
// An absent answer resolves false, keeping confirm-before-mutate intact
// for callers that never asked.
var ContextGate Gate = GateFunc(func(ctx context.Context, action Action, message string) bool {
	confirmed, _ := ctx.Value(confirmKey).(bool)
	return confirmed
})
