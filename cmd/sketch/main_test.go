package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    []float64
		wantErr bool
	}{
		{"0,0,1", 3, []float64{0, 0, 1}, false},
		{" -2, 0.5 ,2,0", 4, []float64{-2, 0.5, 2, 0}, false},
		{"1,2", 3, nil, true},
		{"1,x,3", 3, nil, true},
	}

	for _, tt := range tests {
		got, err := parseFloats(tt.in, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFloats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("parseFloats(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"rect", "intersect", "Moving Rectangle"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output is missing %q:\n%s", want, out)
		}
	}
}

func TestExportCommand(t *testing.T) {
	png := filepath.Join(t.TempDir(), "chord.png")
	out, err := execute(t, "export", "--circle", "0,0,1", "--segment", "-2,0,2,0", "-o", png, "--size", "64", "--log-level", "error")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	want := []string{
		"Circle: center (0.00, 0.00) radius = 1.00",
		"Line segment: (-2.00, 0.00) ~ (2.00, 0.00)",
		"Intersection Points: 2 Point 1: (1.00, 0.00) Point 2: (-1.00, 0.00)",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("output lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	if fi, err := os.Stat(png); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "export", "--circle", "0,0", "--segment", "0,0,1,1", "-o", "x.png"); err == nil {
		t.Error("short --circle should fail")
	}
	if _, err := execute(t, "export", "--circle", "0,0,-1", "--segment", "0,0,1,1", "-o", "x.png"); err == nil {
		t.Error("negative radius should fail")
	}
}

func TestRunUnknownDemo(t *testing.T) {
	if _, err := execute(t, "run", "nope"); err == nil {
		t.Error("unknown demo should fail")
	}
}

func TestHistoryCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sessions.db")
	out, err := execute(t, "history", "--db", db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Errorf("history output = %q", out)
	}

	out, err = execute(t, "history", "rect", "--clear", "--db", db)
	if err != nil || !strings.Contains(out, "Sessions cleared.") {
		t.Errorf("history --clear = %q, %v", out, err)
	}
}
