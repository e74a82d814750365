package filterargv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// setCommandLine replaces CommandLine for the duration of the test.
// Tests using it must not be parallel.
func setCommandLine(t *testing.T, args ...string) {
	t.Helper()
	prev := CommandLine
	CommandLine = func() []string {
		return args
	}
	t.Cleanup(func() {
		CommandLine = prev
	})
}

func TestFilterCommandLine(t *testing.T) {
	setCommandLine(t, "argOne", "argTwo", "argThree")
	res, err := FilterCommandLine(DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"argOne", "argTwo", "argThree"}, res)

	setCommandLine(t, "argOne", "argTwo", "--flag", "argThree")
	res, err = FilterCommandLine(DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"argOne", "argTwo", "argThree"}, res)

	res, err = FilterCommandLine(DefaultOptions().WithFlags(true).WithStandardArgs(false))
	require.NoError(t, err)
	require.Equal(t, []string{"--flag"}, res)

	_, err = FilterCommandLine(DefaultOptions().WithAssignments("bogus"))
	require.ErrorIs(t, err, ErrInvalidAssignments)
}

func TestCommandLineConvenience(t *testing.T) {
	setCommandLine(t, "a", "--b=c", "d=e", "-f", "--")
	require.Equal(t, []string{"--b=c", "d=e"}, AssignmentArgsOnlyCommandLine())
	require.Equal(t, []string{"-f"}, FlagArgsOnlyCommandLine())
}

func TestCommandLine_Default(t *testing.T) {
	prev := os.Args
	t.Cleanup(func() {
		os.Args = prev
	})

	os.Args = []string{"/bin/prog", "a", "-b"}
	require.Equal(t, []string{"a", "-b"}, CommandLine())

	os.Args = nil
	require.Empty(t, CommandLine())
}
