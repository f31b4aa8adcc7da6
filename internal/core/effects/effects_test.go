package effects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFile(t *testing.T) {
	got := WriteFile("app/Services", "app/Services/StatusServe.php", []byte("<?php"))

	want := CompositeEffect{Effects: []Effect{
		FileEffect{Operation: OpMkdir, Path: "app/Services"},
		FileEffect{Operation: OpWrite, Path: "app/Services/StatusServe.php", Content: []byte("<?php")},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WriteFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectTypes(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{LogEffect{}, "log"},
		{FileEffect{}, "file"},
		{CompositeEffect{}, "composite"},
		{NoEffect{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.effect.EffectType(); got != tt.want {
			t.Errorf("%T.EffectType() = %q, want %q", tt.effect, got, tt.want)
		}
	}
}
