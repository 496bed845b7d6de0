package main

// Notes:
// - run: we test command dispatch and exit codes. Build behavior itself is
//   covered in build_test.go.
// - hasVerboseFlag: we test detection before and after "--".
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"content/index.md": "# Home",
		"content/bad.md":   "no title here",
		"page.md":          "# Tree",
	})

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, ExitUsage, "", "Usage: md2site"},
		{"unknown command", []string{"convert"}, ExitUsage, "", `unknown command "convert"`},
		{"version", []string{"version"}, ExitSuccess, "md2site dev", ""},
		{"version flag", []string{"--version"}, ExitSuccess, "md2site dev", ""},
		{"help", []string{"help"}, ExitSuccess, "Commands:", ""},
		{"help unknown", []string{"help", "nope"}, ExitUsage, "", "invalid usage"},
		{"build help", []string{"build", "--help"}, ExitSuccess, "", "Usage: md2site build"},
		{"tree", []string{"tree", filepath.Join(root, "page.md")}, ExitSuccess, `"Tree"`, ""},
		{"tree usage", []string{"tree"}, ExitUsage, "", "invalid usage"},
		{
			name:       "build with content failure",
			args:       []string{"build", filepath.Join(root, "content"), "-o", filepath.Join(root, "public"), "--no-static"},
			wantCode:   ExitContent,
			wantStdout: "1 page built",
			wantStderr: "1 of 2 pages failed",
		},
		{"build bad workers", []string{"build", "-w", "999"}, ExitUsage, "", "invalid worker count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := run(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("run(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early flag detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"build", "-v"}, true},
		{[]string{"build", "--verbose"}, true},
		{[]string{"build", "-q"}, false},
		{[]string{"build", "--", "-v"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
