package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "token")
	if err := os.WriteFile(file, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte(" \n"), 0o600); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	t.Setenv("RESUME_SKILLS_TEST_TOKEN", "from-env")

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr bool
	}{
		{name: "file wins", src: Source{File: file, Value: "inline", Env: "RESUME_SKILLS_TEST_TOKEN"}, want: "from-file"},
		{name: "inline before env", src: Source{Value: " inline ", Env: "RESUME_SKILLS_TEST_TOKEN"}, want: "inline"},
		{name: "env fallback", src: Source{Env: "RESUME_SKILLS_TEST_TOKEN"}, want: "from-env"},
		{name: "empty file", src: Source{Name: "hf token", File: empty}, wantErr: true},
		{name: "missing file", src: Source{File: filepath.Join(dir, "nope")}, wantErr: true},
		{name: "unset env", src: Source{Env: "RESUME_SKILLS_TEST_UNSET"}, wantErr: true},
		{name: "nothing", src: Source{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
