package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
)

// HistoryAdapter translates history commands to HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints activity entries, newest first.
func (a *HistoryAdapter) List(ctx context.Context, req primary.HistoryRequest) error {
	entries, err := a.service.ListHistory(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-8s %-10s %-10s %s\n", "TIME", "RUN", "KIND", "ACTION", "PATH")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-20s %-8s %-10s %s %s\n", e.CreatedAt, shortRunID(e.RunID), e.Kind, actionLabel(e.Action), e.Path)
	}
	fmt.Fprintln(a.out)

	return nil
}

func actionLabel(action string) string {
	switch action {
	case secondary.ActionCreated:
		return color.New(color.FgGreen).Sprintf("%-10s", action)
	case secondary.ActionSkipped:
		return color.New(color.FgYellow).Sprintf("%-10s", action)
	default:
		return fmt.Sprintf("%-10s", action)
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
