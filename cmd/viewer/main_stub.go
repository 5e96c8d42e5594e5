//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The forest fire viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/viewer` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless run with an animation file use ./cmd/forestfire -out fire.avi.")
	os.Exit(2)
}
