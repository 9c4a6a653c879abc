package main

import (
	"os"

	"github.com/dart-cn/RePlugin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
