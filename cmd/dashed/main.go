// Command dashed renders and previews animated dashed borders.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/dashed/cmd/dashed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
