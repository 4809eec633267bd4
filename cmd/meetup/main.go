package main

import (
	"os"

	"github.com/connorholly11/friend-meetup/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
