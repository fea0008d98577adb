package main

import (
	"os"

	"github.com/matt-steen/reminder-tracker/pkg/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
