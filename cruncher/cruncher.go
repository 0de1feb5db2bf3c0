// Package cruncher turns a SPIR-V shader binary into a self-contained C
// header: a SMOL-V compressed payload plus a decrunch function pruned down
// to only the branches that payload actually needs.
//
// Example usage:
//
//	result, err := cruncher.Crunch(spirvBytes, cruncher.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("shader.h", result.Header, 0644)
package cruncher

import (
	"bytes"
	"embed"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/A57R4L/spirvcruncher/smolv"
)

//go:embed assets/decrunch_template.h
var embeddedAssets embed.FS

const embeddedTemplatePath = "assets/decrunch_template.h"

// Options configures a crunch run.
type Options struct {
	// ArrayName names the emitted byte array, its size constants, and the
	// data_seg section the array is placed in.
	ArrayName string

	// StripDebugInfo drops OpSource*/OpName/OpMemberName/OpString/OpLine/
	// OpNoLine/OpModuleProcessed before encoding.
	StripDebugInfo bool

	// TemplatePath overrides the embedded decrunch template with an
	// external file, for iterating on the template without a rebuild.
	TemplatePath string

	// Timestamp stamps the generated header's banner comment. Zero means
	// Crunch stamps it with time.Now() instead; callers that need
	// deterministic output (tests, golden files) set it explicitly.
	Timestamp time.Time
}

// DefaultOptions returns the defaults from the CLI surface.
func DefaultOptions() Options {
	return Options{ArrayName: "spirvcrunchedshader"}
}

// Result carries the pieces a caller may want beyond the rendered header:
// the intermediate SMOL-V bytes and the usage analysis that drove pruning.
type Result struct {
	Header   []byte
	SMOLV    []byte
	Analysis *smolv.DecodeAnalysis
}

// Crunch runs the full pipeline: encode the SPIR-V module to SMOL-V,
// decode it again while recording which decoder branches fire, then render
// a pruned decrunch header from that analysis.
//
// The pipeline is:
//  1. Encode SPIR-V to SMOL-V (smolv.Encode)
//  2. Decode SMOL-V with analysis instrumentation (smolv.DecodeWithAnalysis)
//  3. Render the decrunch template, keeping only branches analysis saw fire
func Crunch(spirv []byte, opts Options) (*Result, error) {
	if opts.ArrayName == "" {
		opts.ArrayName = "spirvcrunchedshader"
	}
	stamp := opts.Timestamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	smolvBytes, err := smolv.Encode(spirv, smolv.EncodeOptions{StripDebugInfo: opts.StripDebugInfo})
	if err != nil {
		return nil, fmt.Errorf("cruncher: encode: %w", err)
	}

	analysis := smolv.NewDecodeAnalysis()
	if _, err := smolv.DecodeWithAnalysis(smolvBytes, analysis); err != nil {
		return nil, fmt.Errorf("cruncher: analysing decode: %w", err)
	}

	tmpl, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	prologue := Prologue{
		Version:   binary.LittleEndian.Uint32(smolvBytes[4:8]) & 0x00FFFFFF,
		Generator: binary.LittleEndian.Uint32(smolvBytes[8:12]),
		Bound:     binary.LittleEndian.Uint32(smolvBytes[12:16]),
		Schema:    binary.LittleEndian.Uint32(smolvBytes[16:20]),
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Generated with spirvcruncher on %s\n\n", stamp.Format(time.RFC3339))
	fmt.Fprintf(&out, "#pragma once\n\n")
	if err := Render(&out, tmpl, analysis, smolvBytes[24:], opts.ArrayName, prologue); err != nil {
		return nil, fmt.Errorf("cruncher: render: %w", err)
	}
	decodedSize := binary.LittleEndian.Uint32(smolvBytes[20:24])
	fmt.Fprintf(&out, "\nconst size_t %s_sizeInBytes = %d;\n", opts.ArrayName, decodedSize)

	return &Result{
		Header:   out.Bytes(),
		SMOLV:    smolvBytes,
		Analysis: analysis,
	}, nil
}

func loadTemplate(path string) ([]byte, error) {
	if path == "" {
		b, err := embeddedAssets.ReadFile(embeddedTemplatePath)
		if err != nil {
			return nil, smolv.NewError(smolv.ErrTemplateError, "reading embedded template: "+err.Error())
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, smolv.NewError(smolv.ErrTemplateError, "reading template "+path+": "+err.Error())
	}
	return b, nil
}
