package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(out)
}

func TestStatusOutput(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"success", func() { printSuccess("wall complete") }, "wall complete"},
		{"error", func() { printError("build stalled at %d/%d bricks", 10, 312) }, "build stalled at 10/312 bricks"},
		{"warning", func() { printWarning("cache disabled") }, "cache disabled"},
		{"info", func() { printInfo("cache is empty") }, "cache is empty"},
		{"detail", func() { printDetail("course %d", 3) }, "course 3"},
		{"keyvalue", func() { printKeyValue("Strides", "12") }, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, tt.fn)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}
