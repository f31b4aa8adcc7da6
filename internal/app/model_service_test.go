package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/apihelper/internal/core/naming"
	"github.com/example/apihelper/internal/ctxutil"
	"github.com/example/apihelper/internal/logging"
	"github.com/example/apihelper/internal/ports/primary"
	"github.com/example/apihelper/internal/ports/secondary"
)

func newTestModelService(confirmer *mockConfirmer) (*ModelServiceImpl, *mockWorkspace, *mockActivityRepo) {
	ws := newMockWorkspace()
	activity := &mockActivityRepo{}
	logger := logging.Discard()
	svc := NewModelService(ws, ws, newMockTemplateSource(), confirmer, newTestConfig(), activity,
		NewEffectExecutor(ws, logger), logger)
	return svc, ws, activity
}

func TestMakeModel(t *testing.T) {
	svc, ws, activity := newTestModelService(&mockConfirmer{})
	ctx := context.Background()

	resp, err := svc.MakeModel(ctx, primary.MakeModelRequest{Name: "Blog/Post"})
	if err != nil {
		t.Fatalf("MakeModel failed: %v", err)
	}

	want := primary.GeneratedFile{
		Key:    "Post",
		Class:  `App\Blog\Post`,
		Path:   "/project/app/Blog/Post.php",
		Status: primary.FileCreated,
	}
	if diff := cmp.Diff(want, resp.File, cmpIgnoreContent); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}

	content := string(ws.files["/project/app/Blog/Post.php"])
	for _, s := range []string{`namespace App\Blog;`, "class Post extends Model"} {
		if !strings.Contains(content, s) {
			t.Errorf("model missing %q:\n%s", s, content)
		}
	}
	if len(activity.records) != 1 || activity.records[0].Kind != KindModel {
		t.Errorf("expected one model activity record, got %+v", activity.records)
	}
	if activity.records[0].RunID == "" {
		t.Error("standalone model run should get a run ID")
	}
}

func TestMakeModel_Existing(t *testing.T) {
	svc, ws, _ := newTestModelService(&mockConfirmer{})
	ws.files["/project/app/Post.php"] = []byte("mine")

	resp, err := svc.MakeModel(context.Background(), primary.MakeModelRequest{Name: "Post"})
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	if resp.File.Status != primary.FileExists {
		t.Errorf("Status = %q, want EXISTS", resp.File.Status)
	}
	if string(ws.files["/project/app/Post.php"]) != "mine" {
		t.Error("existing model was overwritten")
	}
}

func TestMakeModel_InvalidName(t *testing.T) {
	svc, ws, _ := newTestModelService(&mockConfirmer{})

	for _, name := range []string{"Post!", ""} {
		if _, err := svc.MakeModel(context.Background(), primary.MakeModelRequest{Name: name}); !errors.Is(err, naming.ErrInvalidReference) {
			t.Errorf("MakeModel(%q) error = %v, want ErrInvalidReference", name, err)
		}
	}
	if len(ws.files) != 0 {
		t.Errorf("no files expected, got %v", ws.writes)
	}
}

func TestEnsureModel(t *testing.T) {
	tests := []struct {
		name      string
		existing  bool
		answer    bool
		want      secondary.ModelOutcome
		wantAsked bool
		wantFile  bool
	}{
		{"existing class is not asked about", true, true, secondary.ModelExisted, false, true},
		{"declined", false, false, secondary.ModelDeclined, true, false},
		{"generated", false, true, secondary.ModelGenerated, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmer := &mockConfirmer{answer: tt.answer}
			svc, ws, _ := newTestModelService(confirmer)
			if tt.existing {
				ws.files["/project/app/Post.php"] = []byte("<?php")
			}

			got, err := svc.EnsureModel(context.Background(), `App\Post`)
			if err != nil {
				t.Fatalf("EnsureModel failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("outcome = %q, want %q", got, tt.want)
			}
			if asked := len(confirmer.asked) > 0; asked != tt.wantAsked {
				t.Errorf("asked = %v, want %v", asked, tt.wantAsked)
			}
			if tt.wantAsked && confirmer.asked[0] != `A App\Post model does not exist. Do you want to generate it?` {
				t.Errorf("unexpected question %q", confirmer.asked[0])
			}
			if _, ok := ws.files["/project/app/Post.php"]; ok != tt.wantFile {
				t.Errorf("model file present = %v, want %v", ok, tt.wantFile)
			}
		})
	}
}

func TestEnsureModel_SharesRunID(t *testing.T) {
	svc, _, activity := newTestModelService(&mockConfirmer{answer: true})
	ctx := ctxutil.WithRunID(context.Background(), "RUN-1")

	if _, err := svc.EnsureModel(ctx, `App\Post`); err != nil {
		t.Fatalf("EnsureModel failed: %v", err)
	}
	if len(activity.records) != 1 || activity.records[0].RunID != "RUN-1" {
		t.Errorf("expected record for RUN-1, got %+v", activity.records)
	}
}

func TestEnsureModel_ConfirmError(t *testing.T) {
	aborted := errors.New("aborted")
	svc, _, _ := newTestModelService(&mockConfirmer{err: aborted})

	if _, err := svc.EnsureModel(context.Background(), `App\Post`); !errors.Is(err, aborted) {
		t.Errorf("expected confirm error, got %v", err)
	}
}
