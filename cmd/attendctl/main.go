package main

import (
	"fmt"
	"os"

	"go-attendance/internal/cli"
)

func main() {
	if err := cli.RootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
