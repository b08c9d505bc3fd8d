package main

import (
	"fmt"
	"os"

	"github.com/bjaus/treefmt/internal/cli"
	"github.com/bjaus/treefmt/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command and returns the process exit code. Returning
// instead of exiting lets the deferred Sync flush the logger.
func run(args []string) int {
	logger, err := logging.NewLogger(os.Getenv("TREEFMT_DEBUG") != "")
	if err != nil {
		panic(fmt.Errorf("initialize logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	command := cli.NewRootCommand(logger)
	command.SetArgs(args)
	if err := command.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}
