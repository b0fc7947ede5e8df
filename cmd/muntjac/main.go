// Muntjac - shrink LLM prompts without losing their meaning
package main

import (
	"os"

	"github.com/HartBrook/muntjac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
