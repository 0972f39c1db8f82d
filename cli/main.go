package main

import (
	"log"

	"github.com/appraise-dev/create-appraise/cli/cmd"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/appraise-dev/create-appraise/cli/version"
)

func main() {
	defer func() {
		// Panics are reported as internal errors with version information.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s", version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
