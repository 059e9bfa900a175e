package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/mytodo/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mytodo: %v\n", err)
		os.Exit(1)
	}
}
