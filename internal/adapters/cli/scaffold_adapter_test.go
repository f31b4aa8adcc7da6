package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/apihelper/internal/app"
	"github.com/example/apihelper/internal/ports/primary"
)

// mockScaffoldService implements primary.ScaffoldService for testing
type mockScaffoldService struct {
	makeControllerFn func(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error)

	// Track calls for verification
	lastReq primary.MakeControllerRequest
}

func (m *mockScaffoldService) MakeController(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error) {
	m.lastReq = req
	if m.makeControllerFn != nil {
		return m.makeControllerFn(ctx, req)
	}
	return &primary.MakeControllerResponse{
		Class: `App\Http\Controllers\Api\PostController`,
		BaseFiles: []primary.GeneratedFile{
			{Key: "StatusServe", Path: "/p/app/Services/StatusServe.php", Status: primary.FileExists},
			{Key: "ResponseServe", Path: "/p/app/Services/ResponseServe.php", Status: primary.FileCreated},
		},
		Controller: primary.GeneratedFile{
			Path:    "/p/app/Http/Controllers/Api/PostController.php",
			Status:  primary.FileCreated,
			Content: "<?php",
		},
	}, nil
}

// mockModelService implements primary.ModelService for testing
type mockModelService struct {
	err error
}

func (m *mockModelService) MakeModel(ctx context.Context, req primary.MakeModelRequest) (*primary.MakeModelResponse, error) {
	resp := &primary.MakeModelResponse{File: primary.GeneratedFile{Path: "/p/app/" + req.Name + ".php", Status: primary.FileCreated}}
	return resp, m.err
}

func TestScaffoldAdapter_MakeController(t *testing.T) {
	svc := &mockScaffoldService{}
	var out bytes.Buffer
	adapter := NewScaffoldAdapter(svc, &mockModelService{}, &out)

	req := primary.MakeControllerRequest{Name: "PostController", Model: "Post"}
	if err := adapter.MakeController(context.Background(), req); err != nil {
		t.Fatalf("MakeController failed: %v", err)
	}

	if svc.lastReq != req {
		t.Errorf("request not passed through: %+v", svc.lastReq)
	}
	output := out.String()
	if strings.Contains(output, "StatusServe.php") {
		t.Errorf("existing base files should not be listed:\n%s", output)
	}
	for _, want := range []string{
		"Created /p/app/Services/ResponseServe.php",
		"Created /p/app/Http/Controllers/Api/PostController.php",
		"Controller created successfully.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestScaffoldAdapter_MakeControllerExists(t *testing.T) {
	svc := &mockScaffoldService{
		makeControllerFn: func(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error) {
			return &primary.MakeControllerResponse{
				Controller: primary.GeneratedFile{Path: "/p/x.php", Status: primary.FileExists},
			}, fmt.Errorf("%w: /p/x.php", app.ErrTargetExists)
		},
	}
	var out bytes.Buffer
	adapter := NewScaffoldAdapter(svc, &mockModelService{}, &out)

	if err := adapter.MakeController(context.Background(), primary.MakeControllerRequest{Name: "X"}); err != nil {
		t.Fatalf("existing controller should not be an error, got %v", err)
	}
	if !strings.Contains(out.String(), "Controller already exists!") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestScaffoldAdapter_MakeControllerError(t *testing.T) {
	svc := &mockScaffoldService{
		makeControllerFn: func(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error) {
			return nil, app.ErrTemplateUnreadable
		},
	}
	adapter := NewScaffoldAdapter(svc, &mockModelService{}, &bytes.Buffer{})

	if err := adapter.MakeController(context.Background(), primary.MakeControllerRequest{Name: "X"}); !errors.Is(err, app.ErrTemplateUnreadable) {
		t.Errorf("expected ErrTemplateUnreadable, got %v", err)
	}
}

func TestScaffoldAdapter_MakeControllerDryRun(t *testing.T) {
	svc := &mockScaffoldService{
		makeControllerFn: func(ctx context.Context, req primary.MakeControllerRequest) (*primary.MakeControllerResponse, error) {
			return &primary.MakeControllerResponse{
				Controller: primary.GeneratedFile{Path: "/p/x.php", Status: primary.FilePlanned, Content: "class X {}"},
			}, nil
		},
	}
	var out bytes.Buffer
	adapter := NewScaffoldAdapter(svc, &mockModelService{}, &out)

	if err := adapter.MakeController(context.Background(), primary.MakeControllerRequest{Name: "X", DryRun: true}); err != nil {
		t.Fatalf("MakeController failed: %v", err)
	}
	output := out.String()
	for _, want := range []string{"CREATE", "(dry-run mode - no files written)", "--- /p/x.php ---", "class X {}"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestScaffoldAdapter_MakeModel(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		wantErr bool
	}{
		{"created", nil, "Model created successfully.", false},
		{"exists", app.ErrTargetExists, "Model already exists!", false},
		{"failure", app.ErrWriteFailure, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			adapter := NewScaffoldAdapter(&mockScaffoldService{}, &mockModelService{err: tt.err}, &out)

			err := adapter.MakeModel(context.Background(), "Post")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
