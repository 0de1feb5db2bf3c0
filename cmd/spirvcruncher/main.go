// Command spirvcruncher compresses a SPIR-V binary into a self-contained C
// header that embeds both the compressed payload and a decoder pruned to
// only the branches that shader needs.
//
// Usage:
//
//	spirvcruncher -i shader.spv -o shader.h -n myshader
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/A57R4L/spirvcruncher/cruncher"
	"github.com/A57R4L/spirvcruncher/smolv"
)

const toolVersion = "0.1.0-dev"

var (
	input          string
	output         string
	arrayName      string
	stripDebugInfo bool
	silent         bool
	templatePath   string
	verbose        bool
	printVersion   bool
)

func init() {
	flag.StringVar(&input, "i", "", "input SPIR-V binary (required)")
	flag.StringVar(&input, "input", "", "input SPIR-V binary (required)")
	flag.StringVar(&output, "o", "spirvcrunchedshader.h", "output header path")
	flag.StringVar(&output, "output", "spirvcrunchedshader.h", "output header path")
	flag.StringVar(&arrayName, "n", "spirvcrunchedshader", "array and section name")
	flag.StringVar(&arrayName, "name", "spirvcrunchedshader", "array and section name")
	flag.BoolVar(&stripDebugInfo, "d", false, "strip debug info before encoding")
	flag.BoolVar(&stripDebugInfo, "stripdebuginfo", false, "strip debug info before encoding")
	flag.BoolVar(&silent, "s", false, "suppress progress output")
	flag.BoolVar(&silent, "silent", false, "suppress progress output")
	flag.StringVar(&templatePath, "t", "", "override the embedded decrunch template")
	flag.StringVar(&templatePath, "template", "", "override the embedded decrunch template")
	flag.BoolVar(&verbose, "v", false, "print an opcode histogram to stderr")
	flag.BoolVar(&verbose, "verbose", false, "print an opcode histogram to stderr")
	flag.BoolVar(&printVersion, "version", false, "print version and exit")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if printVersion {
		fmt.Printf("spirvcruncher version %s\n", toolVersion)
		return
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified (-i/--input)")
		usage()
		os.Exit(1)
	}

	spirvBytes, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", input, err)
		os.Exit(1)
	}

	opts := cruncher.Options{
		ArrayName:      arrayName,
		StripDebugInfo: stripDebugInfo,
		TemplatePath:   templatePath,
	}

	result, err := cruncher.Crunch(spirvBytes, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spirvcruncher: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(output, result.Header, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}

	if !silent {
		fmt.Printf("Running spirvcruncher for: %s\n", input)
		fmt.Printf("Compressed to size: %d Original size: %d\n", len(result.SMOLV), len(spirvBytes))
		fmt.Printf("%s include file created\n", output)
	}

	if verbose {
		printHistogram(result.Analysis)
	}
}

func printHistogram(a *smolv.DecodeAnalysis) {
	names := make([]string, 0, len(a.SpvOps))
	for name := range a.SpvOps {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, "opcode histogram:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-40s %d\n", name, a.SpvOps[name])
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spirvcruncher -i <input.spv> [-o <output.h>] [-n <arrayname>] [-d] [-s]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spirvcruncher -i shader.spv                       Crunch to spirvcrunchedshader.h\n")
	fmt.Fprintf(os.Stderr, "  spirvcruncher -i shader.spv -o shader.h -n shader Crunch with custom names\n")
	fmt.Fprintf(os.Stderr, "  spirvcruncher -i shader.spv -d                    Strip debug info first\n")
}
