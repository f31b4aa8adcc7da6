package app

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/example/apihelper/internal/logging"
	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
	"github.com/example/apihelper/internal/templates"
)

var cmpIgnoreContent = cmpopts.IgnoreFields(primary.GeneratedFile{}, "Content")

func newTestStubService() (*StubServiceImpl, *mockWorkspace, *mockTemplateSource) {
	ws := newMockWorkspace()
	tpl := newMockTemplateSource()
	logger := logging.Discard()
	return NewStubService(ws, tpl, newTestConfig(), nil, NewEffectExecutor(ws, logger), logger), ws, tpl
}

func TestPublishStubs(t *testing.T) {
	svc, ws, _ := newTestStubService()
	ctx := context.Background()

	files, err := svc.PublishStubs(ctx)
	if err != nil {
		t.Fatalf("PublishStubs failed: %v", err)
	}

	names := templates.Names()
	if len(files) != len(names) {
		t.Fatalf("expected %d files, got %d", len(names), len(files))
	}
	for i, f := range files {
		wantPath := "/project/stubs/apihelper/" + names[i]
		if f.Path != wantPath || f.Status != primary.FileCreated {
			t.Errorf("file %d = %s %s, want %s CREATED", i, f.Path, f.Status, wantPath)
		}
		if len(ws.files[wantPath]) == 0 {
			t.Errorf("%s not written", wantPath)
		}
	}
	if !ws.dirs["/project/stubs/apihelper"] {
		t.Error("override directory not created")
	}

	// second publish leaves the copies alone
	ws.files["/project/stubs/apihelper/Controller.tpl"] = []byte("edited")
	files, err = svc.PublishStubs(ctx)
	if err != nil {
		t.Fatalf("second PublishStubs failed: %v", err)
	}
	for _, f := range files {
		if f.Status != primary.FileExists {
			t.Errorf("%s status = %q, want EXISTS", f.Key, f.Status)
		}
	}
	if string(ws.files["/project/stubs/apihelper/Controller.tpl"]) != "edited" {
		t.Error("published copy was overwritten")
	}
}

func TestListStubs(t *testing.T) {
	svc, _, tpl := newTestStubService()
	tpl.infos = []secondary.TemplateInfo{
		{Name: "ApiController.tpl"},
		{Name: "Controller.tpl", Overridden: true, Path: "/project/stubs/apihelper/Controller.tpl"},
	}

	got, err := svc.ListStubs(context.Background())
	if err != nil {
		t.Fatalf("ListStubs failed: %v", err)
	}

	want := []primary.StubInfo{
		{Name: "ApiController.tpl", Source: SourceBuiltIn},
		{Name: "Controller.tpl", Source: "/project/stubs/apihelper/Controller.tpl"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stubs mismatch (-want +got):\n%s", diff)
	}
}
