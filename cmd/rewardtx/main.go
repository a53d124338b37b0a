// rewardtx inspects, encodes and executes block reward transactions against a sqlite ledger.
package main

import (
	"context"
	"os"

	"github.com/spacemeshos/go-rewardtx/cmd"
)

var (
	version string
	commit  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	a := &app{}
	if err := execute(context.Background(), newRootCommand(a), a); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
