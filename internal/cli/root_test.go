package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := run(cmd, args)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArgs(t *testing.T) {
	code, stdout, stderr := runRoot(t)

	if code == 0 {
		t.Error("exit code = 0, want non-zero")
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr should contain usage, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestRun_PrintsURLs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "animal_code.google.com")
	line := `10.254.254.28 - - [06/Aug/2007:00:13:48 -0700] "GET /path/puzzle/p-baz-aaaa.jpg HTTP/1.0" 302 528 "-" "Mozilla"` + "\n"
	if err := os.WriteFile(logPath, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runRoot(t, logPath)

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stdout != "code.google.com/path/puzzle/p-baz-aaaa.jpg\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_MissingLogFile(t *testing.T) {
	code, _, stderr := runRoot(t, "/nonexistent/animal_code.google.com")

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.HasPrefix(stderr, "Error: ") {
		t.Errorf("stderr = %q, want Error: prefix", stderr)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runRoot(t, "version")

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout, "logpuzzle ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"validate", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if cmd.Flags().Lookup("todir") == nil {
		t.Error("root command missing --todir")
	}
}
