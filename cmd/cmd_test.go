package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper to run a command and capture stdout/stderr
func runCLI(t *testing.T, args ...string) (stdout string, stderr string, runErr error) {
	t.Helper()
	rootCmd.SetArgs(args)

	// Capture stdio
	oldOut, oldErr := os.Stdout, os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout, os.Stderr = wOut, wErr

	runErr = rootCmd.Execute()

	// Close writers then read all
	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout, os.Stderr = oldOut, oldErr
	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)

	// Flag values are sticky on the shared command tree; reset for the
	// next test.
	_ = rootCmd.PersistentFlags().Set("json", "false")
	_ = rootCmd.PersistentFlags().Set("verbose", "false")
	for _, sub := range []string{"print", "session"} {
		for _, c := range rootCmd.Commands() {
			if c.Name() == sub {
				_ = c.Flags().Set("config", "")
				_ = c.Flags().Set("shell", "")
			}
		}
	}

	return string(outBytes), string(errBytes), runErr
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPrint_MarkerDiscovery_BashExports(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".envsh"), "FOO: \"1\"\nBAR: \"2\"\n")
	sub := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, sub)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ENVSH_SHELL", "")
	t.Setenv("ENVSH_LEVEL", "")
	_ = os.Unsetenv("ENVSH_LEVEL")

	out, _, err := runCLI(t, "print", "--shell", "bash")
	if err != nil {
		t.Fatalf("cli returned error: %v", err)
	}
	for _, want := range []string{`export FOO="1"; `, `export BAR="2"; `, `export ENVSH_LEVEL="1"; `} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestPrint_FishDialect(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".envsh"), "FOO: bar\n")
	chdir(t, root)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ENVSH_SHELL", "")

	out, _, err := runCLI(t, "print", "--shell", "fish")
	if err != nil {
		t.Fatalf("cli returned error: %v", err)
	}
	if !strings.Contains(out, `set -gx FOO "bar"; `) {
		t.Fatalf("expected fish syntax, got: %s", out)
	}
}

func TestPrint_NoMarkerFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ENVSH_SHELL", "")

	_, _, err := runCLI(t, "print")
	if err == nil {
		t.Fatal("expected an error with no marker anywhere")
	}
}

func TestPrint_ExplicitConflictReportsBothPaths(t *testing.T) {
	home := t.TempDir()
	cfgDir := filepath.Join(home, "envsh")
	write(t, filepath.Join(cfgDir, "proj.yaml"), "A: 1\n")
	write(t, filepath.Join(cfgDir, "proj.yml"), "A: 1\n")
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("ENVSH_SHELL", "")
	chdir(t, t.TempDir())

	_, _, err := runCLI(t, "print", "--config", "proj")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "proj.yaml") || !strings.Contains(msg, "proj.yml") {
		t.Fatalf("expected both candidate paths in error, got: %s", msg)
	}
}

func TestList_ShowsMarkerAndCatalog(t *testing.T) {
	home := t.TempDir()
	cfgDir := filepath.Join(home, "envsh")
	write(t, filepath.Join(cfgDir, "b.yml"), "")
	write(t, filepath.Join(cfgDir, "a.yaml"), "")
	write(t, filepath.Join(cfgDir, "notes.txt"), "")
	t.Setenv("XDG_CONFIG_HOME", home)

	root := t.TempDir()
	write(t, filepath.Join(root, ".envsh"), "X: y\n")
	chdir(t, root)

	out, _, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("cli returned error: %v", err)
	}
	for _, want := range []string{"Found in path:", ".envsh", "- a.yaml", "- b.yml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got: %s", want, out)
		}
	}
	if strings.Contains(out, "notes.txt") {
		t.Fatalf("unexpected non-config entry in output: %s", out)
	}
}

func TestList_JSONOutput(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, "envsh", "a.yaml"), "")
	t.Setenv("XDG_CONFIG_HOME", home)
	chdir(t, t.TempDir())

	out, _, err := runCLI(t, "--json", "list")
	if err != nil {
		t.Fatalf("cli returned error: %v", err)
	}
	var payload struct {
		Configs []string `json:"configs"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("expected JSON output, got: %s", out)
	}
	if len(payload.Configs) != 1 || payload.Configs[0] != "a.yaml" {
		t.Fatalf("unexpected configs: %v", payload.Configs)
	}
}

func TestList_MissingConfigDirFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	_, _, err := runCLI(t, "list")
	if err == nil {
		t.Fatal("expected missing config dir error")
	}
}

func TestVersionSubcommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("cli returned error: %v", err)
	}
	if !strings.Contains(out, "envsh") {
		t.Fatalf("unexpected version output: %s", out)
	}
}
