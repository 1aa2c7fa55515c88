package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t         *testing.T
	configDir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, key := range []string{"LPPM_CONFIG_DIR", "LPPM_SHELL", "LPPM_SHELL_FLAG", "LPPM_TEMPLATES_DIR", "LPPM_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	return &harness{t: t, configDir: filepath.Join(t.TempDir(), "lppm")}
}

// run executes lppm with the given stdin and returns stdout and stderr
func (h *harness) run(stdin string, args ...string) (string, string, error) {
	h.t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := NewRootCmdWithStreams(Streams{In: strings.NewReader(stdin), Out: out, Err: errOut})
	root.SetArgs(append([]string{"--config-dir", h.configDir}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, _, err := h.run("", args...)
	require.NoError(h.t, err, "lppm %v", args)
	return out
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("version")

	assert.Contains(t, out, "lppm version")
}

func TestCompletion(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("completion", "bash")

	assert.Contains(t, out, "bash completion")
}

func TestGlobalsLifecycle(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("globals", "list")
	assert.Contains(t, out, "globals file is empty")

	h.mustRun("globals", "set", "AUTHOR", "  Ann Smith ")
	h.mustRun("globals", "set", "LICENSE", "MIT")

	out = h.mustRun("globals", "get", "AUTHOR")
	assert.Equal(t, "AUTHOR: Ann Smith\n", out)

	out = h.mustRun("globals", "list")
	assert.Equal(t, "AUTHOR: Ann Smith\nLICENSE: MIT\n", out)

	h.mustRun("globals", "unset", "LICENSE")
	_, _, err := h.run("", "globals", "get", "LICENSE")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	data, err := os.ReadFile(filepath.Join(h.configDir, "globals.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[variables]")
}

func TestGlobalsSetOverride(t *testing.T) {
	h := newHarness(t)
	h.mustRun("globals", "set", "NAME", "Ann")

	_, _, err := h.run("n\n", "globals", "set", "NAME", "Bob")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirmationDenied))

	_, _, err = h.run("y\n", "globals", "set", "NAME", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "NAME: Bob\n", h.mustRun("globals", "get", "NAME"))

	h.mustRun("--yes", "globals", "set", "NAME", "Cy")
	assert.Equal(t, "NAME: Cy\n", h.mustRun("globals", "get", "NAME"))
}

func TestGlobalsInit(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("Ann\nann@example.com\n\n\n\n", "globals", "init")
	require.NoError(t, err)

	out := h.mustRun("globals", "list")
	assert.Contains(t, out, "AUTHOR: Ann\n")
	assert.Contains(t, out, "MAIL: ann@example.com\n")
	assert.Contains(t, out, "LICENSE: All rights reserved.\n")
	assert.NotContains(t, out, "GITHUB")
}

func TestTemplateLifecycle(t *testing.T) {
	h := newHarness(t)
	source := t.TempDir()
	writeFiles(t, source, map[string]string{
		"README.md":      "# @@PROJECT_NAME@@",
		"src/main.go":    "package main",
		".lppm_template": "LPPM TEMPLATE V1\n\"ignored\";\n",
	})

	h.mustRun("template", "create", "go", source)
	out := h.mustRun("template", "list")
	assert.Equal(t, "go: "+filepath.Join(h.configDir, "templates", "go")+"\n", out)

	h.mustRun("template", "cmd", "add", "go", "git init")
	h.mustRun("template", "cmd", "add", "go", "echo \"done\"")

	out = h.mustRun("template", "cmd", "list", "go")
	assert.Contains(t, out, "[0] git init\n[1] echo \"done\"\n")

	out = h.mustRun("template", "show", "go")
	assert.Contains(t, out, "project template `go`")
	assert.Contains(t, out, "file count: 2\n")
	assert.Contains(t, out, "[1] echo \"done\"")

	_, _, err := h.run("", "template", "cmd", "remove", "go", "first")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, _, err = h.run("", "template", "cmd", "remove", "go", "5")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))

	out, _, err = h.run("y\n", "template", "cmd", "remove", "go", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "removed command `git init`")
	assert.Contains(t, h.mustRun("template", "cmd", "list", "go"), "[0] echo \"done\"\n")

	out, _, err = h.run("n\n", "template", "remove", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "kept project template `go`")

	h.mustRun("--yes", "template", "remove", "go")
	assert.Contains(t, h.mustRun("template", "list"), "no project templates found")
}

func TestTemplateCreateErrors(t *testing.T) {
	h := newHarness(t)
	h.mustRun("template", "new", "empty")

	_, _, err := h.run("", "template", "create", "empty")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, _, err = h.run("", "template", "create", "other", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.NoDirExists(t, filepath.Join(h.configDir, "templates", "other"))
}

func TestTemplateImport(t *testing.T) {
	h := newHarness(t)
	source := t.TempDir()
	writeFiles(t, source, map[string]string{
		".lppm_template": "LPPM TEMPLATE V1\n\"make\";\n",
		"Makefile":       "all:",
	})

	out := h.mustRun("template", "import", "mk", source)
	assert.Contains(t, out, "successfully imported project template `mk`")
	assert.Contains(t, h.mustRun("template", "cmd", "list", "mk"), "[0] make\n")

	bad := t.TempDir()
	writeFiles(t, bad, map[string]string{".lppm_template": "NOT A TEMPLATE\n"})
	_, _, err := h.run("", "template", "import", "bad", bad)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormat))

	_, _, err = h.run("", "template", "import", "none", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestProjectCreate(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no shell available")
	}
	h := newHarness(t)
	source := t.TempDir()
	writeFiles(t, source, map[string]string{
		"@@NAME@@.txt":          "by @@NAME@@ for @@CLIENT@@",
		"docs/@@PROJECT_NAME@@": "@@PROJECT_NAME@@",
	})
	h.mustRun("template", "create", "t", source)
	h.mustRun("template", "cmd", "add", "t", "echo @@PROJECT_NAME@@ @@CLIENT@@ > marker.txt")
	h.mustRun("globals", "set", "NAME", "Ann")

	target := filepath.Join(t.TempDir(), "demo")
	out, _, err := h.run("Acme\n", "project", "create", "t", target)
	require.NoError(t, err)
	assert.Contains(t, out, "successfully created a project at `"+target+"` from template `t`")

	content, err := os.ReadFile(filepath.Join(target, "Ann.txt"))
	require.NoError(t, err)
	assert.Equal(t, "by Ann for Acme", string(content))

	content, err = os.ReadFile(filepath.Join(target, "docs", "demo"))
	require.NoError(t, err)
	assert.Equal(t, "demo", string(content))

	marker, err := os.ReadFile(filepath.Join(target, "marker.txt"))
	require.NoError(t, err)
	assert.Equal(t, "demo Acme\n", string(marker))
	assert.NoFileExists(t, filepath.Join(target, ".lppm_template"))

	_, _, err = h.run("", "project", "new", "t", target)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestProjectInitFailingCommand(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no shell available")
	}
	h := newHarness(t)
	h.mustRun("template", "create", "t")
	h.mustRun("template", "cmd", "add", "t", "exit 3")
	h.mustRun("template", "cmd", "add", "t", "touch never")

	target := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)

	_, _, err = h.run("", "project", "init", "t", target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNonZeroExit))
	assert.Equal(t, 3, errors.GetErrorDetails(err)["exit_code"])
	assert.NoFileExists(t, filepath.Join(target, "never"))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, after)
}

func TestProjectInitRequiresEmptyTarget(t *testing.T) {
	h := newHarness(t)
	h.mustRun("template", "create", "t")
	target := t.TempDir()
	writeFiles(t, target, map[string]string{"keep": "x"})

	_, _, err := h.run("", "project", "init", "t", target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestTemplatesDirFlag(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(t.TempDir(), "elsewhere")

	h.mustRun("--templates-dir", dir, "template", "create", "x")

	assert.DirExists(t, filepath.Join(dir, "x"))
	assert.Contains(t, h.mustRun("template", "list"), "no project templates found")
}

func TestExecutePrintsFatalWithConfiguredColor(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name      string
		color     string
		wantColor bool
	}{
		{"always", "always", true},
		{"never", "never", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			streams := Streams{In: strings.NewReader(""), Out: &out, Err: &errOut}

			code := executeWith(streams, []string{"--config-dir", h.configDir, "--color", tt.color, "template", "show", "missing"})

			assert.Equal(t, 1, code)
			assert.Contains(t, errOut.String(), "fatal: ")
			assert.Equal(t, tt.wantColor, strings.Contains(errOut.String(), "\x1b["))
		})
	}
}

func TestExecuteFallsBackBeforeConfigLoads(t *testing.T) {
	h := newHarness(t)
	var out, errOut bytes.Buffer
	streams := Streams{In: strings.NewReader(""), Out: &out, Err: &errOut}

	code := executeWith(streams, []string{"--config-dir", h.configDir, "--color", "purple", "template", "list"})

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "fatal: [INVALID_INPUT]")
}

func TestExecuteSucceeds(t *testing.T) {
	newHarness(t)
	var out, errOut bytes.Buffer
	streams := Streams{In: strings.NewReader(""), Out: &out, Err: &errOut}

	assert.Equal(t, 0, executeWith(streams, []string{"version"}))
	assert.Empty(t, errOut.String())
}

func TestProjectCommandsReceiveUnreadInput(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no shell available")
	}
	h := newHarness(t)
	source := t.TempDir()
	writeFiles(t, source, map[string]string{"@@CLIENT@@.txt": "for @@CLIENT@@"})
	h.mustRun("template", "create", "t", source)
	h.mustRun("template", "cmd", "add", "t", "cat > piped.txt")

	target := filepath.Join(t.TempDir(), "demo")
	_, _, err := h.run("Acme\nfrom the pipe\n", "project", "create", "t", target)
	require.NoError(t, err)

	answered, err := os.ReadFile(filepath.Join(target, "Acme.txt"))
	require.NoError(t, err)
	assert.Equal(t, "for Acme", string(answered))

	piped, err := os.ReadFile(filepath.Join(target, "piped.txt"))
	require.NoError(t, err)
	assert.Equal(t, "from the pipe\n", string(piped))
}

func TestTemplateWarningsReachStderr(t *testing.T) {
	h := newHarness(t)
	h.mustRun("template", "create", "good")
	require.NoError(t, os.MkdirAll(filepath.Join(h.configDir, "templates", "broken"), 0755))

	out, errOut, err := h.run("", "template", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "good")
	assert.Contains(t, errOut, "warning: error occurred while loading a list of available templates at template directory")
	assert.Contains(t, errOut, "broken")
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		isErr bool
	}{
		{in: "0", want: 0},
		{in: "12", want: 12},
		{in: "-1", want: -1},
		{in: "one", isErr: true},
		{in: "", isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndex(tt.in)
			if tt.isErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
