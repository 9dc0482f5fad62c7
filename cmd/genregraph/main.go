package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/genregraph/cmd/genregraph/commands"
	"github.com/katalvlaran/genregraph/logger"
)

func main() {
	root := commands.NewRootCmd()
	err := root.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
