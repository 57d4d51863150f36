package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/mouse-blink/modegen/internal/domain"
	domainmocks "github.com/mouse-blink/modegen/internal/domain/mocks"
	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(children ...*cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(children...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd()

	mockWorkflow.On("Generate", domain.GenerateArgs{
		Config: "",
		Output: m.Path("mode.js"),
	}).Return(nil)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_AllFlags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd()

	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Config == m.Path("site.yaml") &&
			args.Output == m.Path("public/theme.js") &&
			args.Stdout &&
			args.DefaultMode == m.ModeDark
	})).Return(nil)

	cmd.SetArgs([]string{"-c", "site.yaml", "-o", "public/theme.js", "--stdout", "--default-mode", "dark"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_DefaultModeResetBetweenCommands(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd()
	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.DefaultMode == m.ModeLight
	})).Return(nil).Once()
	cmd.SetArgs([]string{"--default-mode", "light"})
	require.NoError(t, cmd.Execute())

	cmd = newTestRootCmd()
	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.DefaultMode == ""
	})).Return(nil).Once()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_InvalidDefaultMode(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd()

	cmd.SetArgs([]string{"--default-mode", "purple"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of system, dark, light")

	mockWorkflow.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd()

	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())

	mockWorkflow.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestRootCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRootCmd()

	failure := errors.New("invalid config")
	mockWorkflow.On("Generate", mock.Anything).Return(failure)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.ErrorIs(t, err, failure)
}

func TestRootCmd_LogLevel(t *testing.T) {
	withMockWorkflow(t).On("Generate", mock.Anything).Return(nil)

	original := logLevel.Level()
	t.Cleanup(func() { logLevel.Set(original) })

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"--log-level", "debug"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, slog.LevelDebug, logLevel.Level())
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "modegen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"output", "stdout", "default-mode"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
	}
	for _, name := range []string{"config", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent --%s", name)
	}

	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
	assert.Equal(t, "mode.js", cmd.Flags().Lookup("output").DefValue)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, child := range rootCmd.Commands() {
		names = append(names, child.Name())
	}

	assert.Subset(t, names, []string{"batch", "check", "inspect", "serve"})
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		rootCmd = &cobra.Command{
			Use:  "test",
			RunE: func(_ *cobra.Command, _ []string) error { return nil },
		}
		rootCmd.SetArgs([]string{})

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("Expected exit code 0, got %d", exitErr.ExitCode())
	}
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		rootCmd.SetArgs([]string{})

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(output), "error occurred"), "output: %s", output)
}
