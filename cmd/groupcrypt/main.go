package main

import (
	"os"

	"groupcrypt/cmd/groupcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
