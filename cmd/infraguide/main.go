package main

import (
	"os"

	"github.com/3-lines-studio/infraguide/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
