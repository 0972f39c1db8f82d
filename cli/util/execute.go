package util

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type emptyStruct struct{}

// readyChan is a channel used to signal completion of a long running action.
type readyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

// sendReady sends ready to channel.
func sendReady(readyChannel readyChan) {
	readyChannel <- ready
}

// StartCommandSpinner starts running spinner
// until `ready` flag is received from the channel.
func StartCommandSpinner(readyChannel readyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	spinner := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		spinner.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	spinner.Start()

	// Wait for the action to complete.
	<-readyChannel

	spinner.Stop()
}

// RunWithSpinner runs action showing a spinner while it is in progress.
// The spinner is shown only if stdout is a terminal.
func RunWithSpinner(prefix string, action func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return action()
	}

	var workGroup sync.WaitGroup
	readyChannel := make(readyChan, 1)

	workGroup.Add(1)
	go StartCommandSpinner(readyChannel, &workGroup, prefix)

	err := action()
	sendReady(readyChannel)
	workGroup.Wait()

	return err
}

// RunCommand runs specified command in workingDir and returns an error.
// If showOutput is set to true, command output is streamed to the terminal.
// Otherwise output is discarded and a spinner is shown while command is running.
// The returned error wraps *exec.ExitError when the command exits with non-zero status.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	cmd.Dir = workingDir
	if showOutput {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	log.Debugf("Running %q in %s", cmd.String(), workingDir)
	var err error
	if showOutput {
		err = cmd.Run()
	} else {
		err = RunWithSpinner("", cmd.Run)
	}
	if err != nil {
		return fmt.Errorf("failed to run %q: %w", cmd.String(), err)
	}

	return nil
}
