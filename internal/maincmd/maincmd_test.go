package maincmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.br")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestValidateRejectsNoCommand(t *testing.T) {
	c := &Cmd{}
	c.SetArgs(nil)
	c.SetFlags(map[string]bool{})
	assert.Error(t, c.Validate())
}

func TestValidateRejectsUnknownCommand(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"frobnicate", "x.br"})
	c.SetFlags(map[string]bool{})
	assert.Error(t, c.Validate())
}

func TestValidateRejectsMissingPath(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"run"})
	c.SetFlags(map[string]bool{})
	assert.Error(t, c.Validate())
}

func TestValidateAcceptsRunWithPath(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"run", "x.br"})
	c.SetFlags(map[string]bool{})
	assert.NoError(t, c.Validate())
}

func TestMainRunsScriptAndPrintsOutput(t *testing.T) {
	path := writeScript(t, `print "hello";`)

	var stdout, stderr bytes.Buffer
	c := maincmdCmd()
	code := c.Main([]string{"bramble", "run", path}, mainer.Stdio{Stdout: &stdout, Stderr: &stderr})
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestMainReportsUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := maincmdCmd()
	code := c.Main([]string{"bramble", "bogus"}, mainer.Stdio{Stdout: &stdout, Stderr: &stderr})
	assert.Equal(t, mainer.InvalidArgs, code)
}

func TestMainTokenizePrintsTokens(t *testing.T) {
	path := writeScript(t, `var x = 1;`)

	var stdout, stderr bytes.Buffer
	c := maincmdCmd()
	code := c.Main([]string{"bramble", "tokenize", path}, mainer.Stdio{Stdout: &stdout, Stderr: &stderr})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, stdout.String(), "var")
}

func maincmdCmd() *Cmd {
	return &Cmd{BuildVersion: "test", BuildDate: "test"}
}
