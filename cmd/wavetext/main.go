// Command wavetext previews the wave text animation.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/wavetext/cmd/wavetext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
