// Command spirvbench prints the size of a SPIR-V module, of its SMOL-V
// encoding, and of that encoding after general-purpose compression (zstd,
// lz4).
//
// Usage:
//
//	spirvbench -i shader.spv
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/A57R4L/spirvcruncher/cruncher"
	"github.com/A57R4L/spirvcruncher/smolv"
)

func main() {
	input := flag.String("i", "", "input SPIR-V binary (required)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: spirvbench -i <shader.spv>")
		os.Exit(1)
	}

	spirvBytes, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	smolvBytes, err := smolv.Encode(spirvBytes, smolv.EncodeOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encode error: %v\n", err)
		os.Exit(1)
	}

	results := cruncher.Survey(smolvBytes)

	fmt.Printf("%-12s %10d bytes\n", "spirv", len(spirvBytes))
	fmt.Printf("%-12s %10d bytes\n", "smolv", len(smolvBytes))
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-12s error: %v\n", r.Algorithm, r.Err)
			continue
		}
		fmt.Printf("%-12s %10d bytes\n", "smolv+"+r.Algorithm, r.CompressedSize)
	}
}
