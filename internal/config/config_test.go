package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filterargv "github.com/cardinalby/go-filter-argv"
)

// newTestRootCmd creates a cobra.Command with the same flags as the real
// root command so that Load can bind them during tests.
func newTestRootCmd() *cobra.Command {
	cmd := &cobra.Command{}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "")
	pf.StringP(KeyOutput, "o", OutputLines, "")
	pf.String(KeyLogLevel, LogLevelInfo, "")
	pf.String(KeyLogFormat, LogFormatText, "")
	pf.BoolP(KeyQuiet, "q", false, "")

	opts := filterargv.DefaultOptions()
	if err := RegisterOptionFlags(cmd.Flags(), &opts); err != nil {
		panic(err)
	}

	return cmd
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filterargv.DefaultOptions(), cfg.Options)
	assert.Equal(t, OutputLines, cfg.Output)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.Quiet)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ValidValues(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.LogLevel = lvl
		assert.NoError(t, cfg.Validate(), "level=%s", lvl)
	}

	for _, format := range []string{"text", "json"} {
		cfg := Default()
		cfg.LogFormat = format
		assert.NoError(t, cfg.Validate(), "format=%s", format)
	}

	for _, out := range []string{"lines", "json", "yaml"} {
		cfg := Default()
		cfg.Output = out
		assert.NoError(t, cfg.Validate(), "output=%s", out)
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")

	cfg = Default()
	cfg.LogFormat = "xml"
	assert.ErrorContains(t, cfg.Validate(), "invalid log format")

	cfg = Default()
	cfg.Output = "csv"
	assert.ErrorContains(t, cfg.Validate(), "invalid output")

	cfg = Default()
	cfg.Assignments = "bogus"
	assert.ErrorIs(t, cfg.Validate(), filterargv.ErrInvalidAssignments)
}

func TestValidate_NormalizesAssignments(t *testing.T) {
	cfg := Default()
	cfg.Assignments = "No-Flags"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, filterargv.AssignmentsNoFlag, cfg.Assignments)
}

func TestEffectiveLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = LogLevelDebug
	assert.Equal(t, LogLevelDebug, cfg.EffectiveLogLevel())

	cfg.Quiet = true
	assert.Equal(t, LogLevelError, cfg.EffectiveLogLevel())
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(newTestRootCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, filterargv.DefaultOptions(), cfg.Options)
	assert.Equal(t, OutputLines, cfg.Output)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_Flags(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newTestRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--flags", "--standard-args=false", "--assignments", "noFlags", "-o", "json", "--keep-lonely-dashes",
	}))

	cfg, err := Load(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, filterargv.Options{
		KeepLonelyDashes: true,
		Assignments:      filterargv.AssignmentsNoFlag,
		Flags:            true,
		StandardArgs:     false,
	}, cfg.Options)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FILTERARGV_ASSIGNMENTS", "none")
	t.Setenv("FILTERARGV_FLAGS", "true")
	t.Setenv("FILTERARGV_LOG_LEVEL", "debug")

	cfg, err := Load(newTestRootCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, filterargv.AssignmentsNone, cfg.Assignments)
	assert.True(t, cfg.Flags)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FILTERARGV_ASSIGNMENTS", "none")

	cmd := newTestRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--assignments", "all"}))

	cfg, err := Load(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, filterargv.AssignmentsAll, cfg.Assignments)
}

func TestLoad_ConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	p := writeTempConfig(t, "assignments: no-flag\nkeep-lonely-dashes: true\nstandard-args: false\noutput: yaml\n")

	cfg, err := Load(newTestRootCmd(), p)
	require.NoError(t, err)
	assert.Equal(t, filterargv.Options{
		KeepLonelyDashes: true,
		Assignments:      filterargv.AssignmentsNoFlag,
		Flags:            false,
		StandardArgs:     false,
	}, cfg.Options)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, p, cfg.ConfigFile)
}

func TestLoad_AutoDiscoveredConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".filterargv.yaml"), []byte("flags: true\n"), 0o600))

	cfg, err := Load(newTestRootCmd(), "")
	require.NoError(t, err)
	assert.True(t, cfg.Flags)
	assert.NotEmpty(t, cfg.ConfigFile)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(newTestRootCmd(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	p := writeTempConfig(t, "assignments: bogus\n")
	_, err = Load(newTestRootCmd(), p)
	assert.ErrorIs(t, err, filterargv.ErrInvalidAssignments)
}

func TestContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.Flags = true
	ctx := NewContext(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
