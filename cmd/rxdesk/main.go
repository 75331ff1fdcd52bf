// Command rxdesk is the pharmacy inventory terminal client.
package main

import (
	"os"

	"github.com/rxdesk/rxdesk/internal/cli"
	"github.com/rxdesk/rxdesk/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome to an exit code.
func run() int {
	if err := cli.NewRootCmd(version.GetVersion()).Execute(); err != nil {
		return 1
	}
	return 0
}
