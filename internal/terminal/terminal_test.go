package terminal

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"atomicgo.dev/cursor"
)

func TestLinesUsed(t *testing.T) {
	tests := []struct {
		length, width, want int
	}{
		{0, 80, 1},
		{80, 80, 1},
		{81, 80, 2},
		{200, 0, 3},
		{10, -1, 1},
	}
	for _, tt := range tests {
		if got := LinesUsed(tt.length, tt.width); got != tt.want {
			t.Errorf("LinesUsed(%d, %d) = %d, want %d", tt.length, tt.width, got, tt.want)
		}
	}
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("https://acme.example.com\n\nsecret\n"), Out: &out}

	url, err := p.Ask("Server URL", "")
	if err != nil || url != "https://acme.example.com" {
		t.Fatalf("Ask() = %q, %v", url, err)
	}
	db, err := p.Ask("Database", "acme")
	if err != nil || db != "acme" {
		t.Fatalf("Ask(default) = %q, %v", db, err)
	}
	pw, err := p.AskSecret("Password")
	if err != nil || pw != "secret" {
		t.Fatalf("AskSecret() = %q, %v", pw, err)
	}
	if !strings.Contains(out.String(), "Database [acme]: ") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := p.Ask("More", ""); err == nil {
		t.Error("Ask() at EOF error = nil")
	}
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p := &Prompter{In: strings.NewReader("admin"), Out: &bytes.Buffer{}}
	got, err := p.Ask("Username", "")
	if err != nil || got != "admin" {
		t.Fatalf("Ask() = %q, %v", got, err)
	}
}

func TestClearLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cursor moves through the console API on windows")
	}
	tests := []struct {
		name          string
		length, width int
		wantUp        int
	}{
		{"short prompt", len("Password") + 2, 80, 1},
		{"wrapped prompt", 100, 40, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := os.CreateTemp(t.TempDir(), "tty")
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cursor.SetTarget(f)
			defer cursor.SetTarget(os.Stdout)

			clearLines(tt.length, tt.width)

			out, err := os.ReadFile(f.Name())
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.Count(string(out), "\x1b[1A"); got != tt.wantUp {
				t.Errorf("cursor moved up %d lines, want %d (output %q)", got, tt.wantUp, out)
			}
		})
	}
}
