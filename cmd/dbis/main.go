package main

import (
	"os"

	"github.com/dbisys/dbis-client/cmd/dbis/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
