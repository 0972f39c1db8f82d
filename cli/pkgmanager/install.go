package pkgmanager

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/util"
)

// Runner runs a command in a working directory.
type Runner interface {
	Run(cmd *exec.Cmd, workDir string) error
}

// TerminalRunner runs commands attached to the operator's terminal.
type TerminalRunner struct{}

// Run starts cmd in workDir, streams its output and waits for it to exit.
func (TerminalRunner) Run(cmd *exec.Cmd, workDir string) error {
	return util.RunCommand(cmd, workDir, true)
}

// InstallError is returned if dependencies installation fails.
type InstallError struct {
	// Command is the command line that was run.
	Command string
	// ExitCode is the process exit code, -1 if the process was not started.
	ExitCode int
	// Err is the underlying error.
	Err error
}

// Error returns error message.
func (e *InstallError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%q failed to start (exit code %d): %s", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%q exited with code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error {
	return e.Err
}

// Install runs pm's install command in targetDir.
func Install(runner Runner, targetDir string, pm PackageManager) error {
	installCmd := ResolveInstallCommand(pm)
	log.Infof("Installing dependencies with %s", installCmd)

	cmd := exec.Command(installCmd.Command, installCmd.Args...)
	if err := runner.Run(cmd, targetDir); err != nil {
		installErr := &InstallError{Command: installCmd.String(), ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		var execErr *exec.Error
		if errors.As(err, &exitErr) {
			installErr.ExitCode = exitErr.ExitCode()
		} else if errors.As(err, &execErr) {
			installErr.Err = execErr
		}
		return installErr
	}

	return nil
}
