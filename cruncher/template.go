package cruncher

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/A57R4L/spirvcruncher/smolv"
)

// Sentinel strings recognised while scanning a decrunch template. Matching
// is textual: a line is classified by which of these substrings it
// contains, same as the generator this package's output is meant to stand
// in for.
const (
	sentinelBlockStart        = "SPIRVCRUNCHER Block Start"
	sentinelBlockEnd          = "SPIRVCRUNCHER Block End"
	sentinelBlockInBlockStart = "SPIRVCRUNCHER BlockInBlock Start"
	sentinelBlockInBlockEnd   = "SPIRVCRUNCHER BlockInBlock End"
	sentinelSpvStart          = "SPIRVCRUNCHER Spv Start"
	sentinelSpvEnd            = "SPIRVCRUNCHER Spv End"
	sentinelRemoveStart       = "SPIRVCRUNCHER Remove on build start"
	sentinelRemoveEnd         = "SPIRVCRUNCHER Remove on build end"
	sentinelSkip              = "SPIRVCRUNCHER skip on build"
	sentinelDecrunchSegment   = "SPIRVCRUNCHER Decrunch Segment"
	sentinelShaderblock       = "SPIRVCRUNCHER Shaderblock"
)

// tagAfterArrows extracts the TAG following the "...>>>>> TAG" arrow marker
// conventionally used by Block/BlockInBlock sentinel lines.
func tagAfterArrows(line string) string {
	i := strings.LastIndex(line, ">>>>>")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i+len(">>>>>"):])
}

// Prologue carries the header fields a generated decrunch prologue writes
// verbatim instead of reading them from the compressed payload.
type Prologue struct {
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// Render scans a decrunch template and writes the pruned decoder to out,
// keeping only the branches analysis observed, substituting prologue for
// the Decrunch Segment marker, and inserting payload where the Shaderblock
// marker appears.
func Render(out *bytes.Buffer, template []byte, analysis *smolv.DecodeAnalysis, payload []byte, arrayName string, prologue Prologue) error {
	scanner := bufio.NewScanner(bytes.NewReader(template))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var inBlock, inBlockInBlock, inRemove bool
	var blockKeep, blockInBlockKeep bool
	var inSpv bool
	spvLine := 0

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.Contains(line, sentinelShaderblock):
			fmt.Fprintf(out, "#pragma data_seg(\".%s\")\n", arrayName)
			fmt.Fprintf(out, "const uint8_t %s[] = {\n", arrayName)
			writeByteArray(out, payload)
			fmt.Fprintf(out, "};\n\n")
			fmt.Fprintf(out, "const size_t %s_encoded_sizeInBytes = %d;\n", arrayName, len(payload))
			continue

		case strings.Contains(line, sentinelDecrunchSegment):
			writePrologue(out, prologue, arrayName)
			continue

		case strings.Contains(line, sentinelRemoveStart):
			inRemove = true
			continue
		case strings.Contains(line, sentinelRemoveEnd):
			inRemove = false
			continue

		case strings.Contains(line, sentinelSpvStart):
			inSpv = true
			spvLine = 0
			continue
		case strings.Contains(line, sentinelSpvEnd):
			inSpv = false
			continue

		case strings.Contains(line, sentinelBlockStart):
			inBlock = true
			tag := tagAfterArrows(line)
			blockKeep = analysis.Blocks[tag] > 0
			continue
		case strings.Contains(line, sentinelBlockEnd):
			inBlock = false
			continue

		case strings.Contains(line, sentinelBlockInBlockStart):
			inBlockInBlock = true
			tag := tagAfterArrows(line)
			blockInBlockKeep = analysis.Blocks[tag] > 0
			continue
		case strings.Contains(line, sentinelBlockInBlockEnd):
			inBlockInBlock = false
			continue
		}

		if inRemove {
			continue
		}
		if strings.Contains(line, sentinelSkip) {
			continue
		}

		if inSpv {
			op := uint32(spvLine)
			spvLine++
			if analysis.SpvOps[smolv.OpcodeName(op)] > 0 {
				out.WriteString(line)
			} else {
				out.WriteString("\t{ 0, 0, 0, 0 },")
			}
			out.WriteByte('\n')
			continue
		}

		if inBlockInBlock && !blockInBlockKeep {
			continue
		}
		if inBlock && !blockKeep {
			continue
		}

		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return smolv.NewError(smolv.ErrTemplateError, "reading template: "+err.Error())
	}
	if inBlock || inBlockInBlock || inRemove || inSpv {
		return smolv.NewError(smolv.ErrTemplateError, "template section unterminated at EOF")
	}
	return nil
}

func writePrologue(out *bytes.Buffer, p Prologue, arrayName string) {
	fmt.Fprintf(out, "\tconst uint8_t* bytes = %s;\n", arrayName)
	fmt.Fprintf(out, "\tconst uint8_t* bytesEnd = bytes + sizeof(%s);\n", arrayName)
	fmt.Fprintf(out, "\twrite4(spirvCode, 0x07230203u);\n")
	fmt.Fprintf(out, "\twrite4(spirvCode, 0x%08xu);\n", p.Version)
	fmt.Fprintf(out, "\twrite4(spirvCode, 0x%08xu);\n", p.Generator)
	fmt.Fprintf(out, "\twrite4(spirvCode, 0x%08xu);\n", p.Bound)
	fmt.Fprintf(out, "\twrite4(spirvCode, 0x%08xu);\n", p.Schema)
}

// writeByteArray formats data as hex-literal bytes, twelve per line,
// matching the layout the original tool's array writer produced.
func writeByteArray(out *bytes.Buffer, data []byte) {
	for i, b := range data {
		if i%12 == 0 {
			out.WriteString("\t")
		}
		fmt.Fprintf(out, "0x%02x", b)
		if i != len(data)-1 {
			out.WriteString(", ")
		}
		if (i+1)%12 == 0 {
			out.WriteString("\n")
		}
	}
	out.WriteString("\n")
}
