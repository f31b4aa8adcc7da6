// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/apihelper/internal/app"
	"github.com/example/apihelper/internal/ports/primary"
)

// ScaffoldAdapter translates make commands to ScaffoldService and ModelService calls.
type ScaffoldAdapter struct {
	scaffold primary.ScaffoldService
	models   primary.ModelService
	out      io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given services.
func NewScaffoldAdapter(scaffold primary.ScaffoldService, models primary.ModelService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		scaffold: scaffold,
		models:   models,
		out:      out,
	}
}

// MakeController generates a controller and reports every file of the run.
// An existing controller is reported, not returned as an error.
func (a *ScaffoldAdapter) MakeController(ctx context.Context, req primary.MakeControllerRequest) error {
	resp, err := a.scaffold.MakeController(ctx, req)
	if resp != nil {
		a.printController(resp, req.DryRun)
	}
	if errors.Is(err, app.ErrTargetExists) {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Controller already exists!"))
		return nil
	}
	if err != nil {
		return err
	}

	if req.DryRun {
		fmt.Fprintln(a.out, "(dry-run mode - no files written)")
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "--- %s ---\n", resp.Controller.Path)
		fmt.Fprintln(a.out, resp.Controller.Content)
		return nil
	}

	fmt.Fprintln(a.out, "Controller created successfully.")
	return nil
}

// MakeModel generates a model class.
func (a *ScaffoldAdapter) MakeModel(ctx context.Context, name string) error {
	resp, err := a.models.MakeModel(ctx, primary.MakeModelRequest{Name: name})
	if errors.Is(err, app.ErrTargetExists) {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Model already exists!"))
		return nil
	}
	if err != nil {
		return err
	}

	printFile(a.out, resp.File)
	fmt.Fprintln(a.out, "Model created successfully.")
	return nil
}

func (a *ScaffoldAdapter) printController(resp *primary.MakeControllerResponse, dryRun bool) {
	for _, f := range resp.BaseFiles {
		if f.Status == primary.FileExists && !dryRun {
			continue
		}
		printFile(a.out, f)
	}
	for _, m := range resp.Models {
		fmt.Fprintf(a.out, "  %s %s: %s\n", m.Role, m.Class, m.Outcome)
	}
	if resp.Controller.Path != "" && resp.Controller.Status != primary.FileExists {
		printFile(a.out, resp.Controller)
	}
}

// printFile prints one line per generated file.
func printFile(out io.Writer, f primary.GeneratedFile) {
	switch f.Status {
	case primary.FileCreated:
		fmt.Fprintf(out, "%s Created %s\n", color.New(color.FgGreen).Sprint("✓"), f.Path)
	default:
		fmt.Fprintf(out, "  %s %s\n", statusLabel(f.Status), f.Path)
	}
}

// statusLabel returns a fixed-width colored label for a file status.
func statusLabel(status primary.FileStatus) string {
	switch status {
	case primary.FileExists:
		return color.New(color.FgBlue).Sprint("EXISTS ")
	case primary.FilePlanned:
		return color.New(color.FgGreen).Sprint("CREATE ")
	case primary.FileCreated:
		return color.New(color.FgGreen).Sprint("CREATED")
	default:
		return string(status)
	}
}
