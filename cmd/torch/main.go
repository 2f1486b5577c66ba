// Command torch is a terminal roguelike with colored dynamic lighting.
package main

import (
	"fmt"
	"os"

	"torch/internal/game"
)

func main() {
	g, err := game.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "torch: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
