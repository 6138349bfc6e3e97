package main

import (
	"os"

	"github.com/msto63/fixstr/cmd/fixstr/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
