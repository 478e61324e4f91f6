// Command lvpack solves 0/1 knapsack instances from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
