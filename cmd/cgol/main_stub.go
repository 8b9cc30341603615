//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cgol requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/cgol` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal version without the tag, use ./cmd/cgol-tui.")
	os.Exit(2)
}
