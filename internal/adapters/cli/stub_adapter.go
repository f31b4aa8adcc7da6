package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/apihelper/internal/ports/primary"
)

// StubAdapter translates stubs commands to StubService calls.
type StubAdapter struct {
	service primary.StubService
	out     io.Writer
}

// NewStubAdapter creates a new StubAdapter with the given service.
func NewStubAdapter(service primary.StubService, out io.Writer) *StubAdapter {
	return &StubAdapter{
		service: service,
		out:     out,
	}
}

// List prints every template and where it is loaded from.
func (a *StubAdapter) List(ctx context.Context) error {
	stubs, err := a.service.ListStubs(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEMPLATE\tSOURCE")
	for _, s := range stubs {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Source)
	}
	return w.Flush()
}

// Publish copies the built-in templates into the project.
func (a *StubAdapter) Publish(ctx context.Context) error {
	files, err := a.service.PublishStubs(ctx)
	for _, f := range files {
		printFile(a.out, f)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Stubs published successfully.")
	return nil
}
