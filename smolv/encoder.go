package smolv

// EncodeOptions controls optional lossy transforms the encoder can apply
// while it re-encodes a module.
type EncodeOptions struct {
	// StripDebugInfo drops OpSource*, OpName, OpMemberName, OpString,
	// OpLine, OpNoLine and OpModuleProcessed instructions entirely.
	StripDebugInfo bool
	// StripOnlyLines drops OpLine/OpNoLine instructions but keeps names
	// and sources. Ignored if StripDebugInfo is set.
	StripOnlyLines bool
}

const (
	flagStripDebugInfo = 1 << 0
	flagStripOnlyLines = 1 << 1
)

var debugOps = map[uint32]bool{
	OpSourceContinued: true,
	OpSource:          true,
	OpSourceExtension: true,
	5:                 true, // Name
	6:                 true, // MemberName
	OpString:          true,
	OpLine:            true,
	317:               true, // NoLine
	330:               true, // ModuleProcessed
}

// Encode compresses a SPIR-V binary module into the SMOL-V wire format.
// The result decodes, via Decode, back into a byte-identical module
// unless an option was used to strip information.
func Encode(spirv []byte, opts EncodeOptions) ([]byte, error) {
	if len(spirv) < 20 || readWord(spirv, 0) != spirvMagic {
		return nil, NewErrorAt(ErrMalformedInput, "not a SPIR-V module", 0)
	}

	out := make([]byte, 0, len(spirv))
	out = appendWord(out, smolvMagic)

	var flags uint32
	if opts.StripDebugInfo {
		flags |= flagStripDebugInfo
	} else if opts.StripOnlyLines {
		flags |= flagStripOnlyLines
	}
	out = appendWord(out, (readWord(spirv, 4)&0x00FFFFFF)|(flags<<24))
	out = appendWord(out, readWord(spirv, 8))  // generator
	out = appendWord(out, readWord(spirv, 12)) // bound
	out = appendWord(out, readWord(spirv, 16)) // schema
	out = appendWord(out, uint32(len(spirv)))  // decoded byte size

	pos := 20
	end := len(spirv)

	var prevResult uint32
	var prevDecorate uint32

	for pos < end {
		header := readWord(spirv, pos)
		instrLen := header >> 16
		op := header & 0xFFFF
		if instrLen == 0 || pos+int(instrLen)*4 > end {
			return nil, NewErrorAt(ErrMalformedInput, "bad instruction length", pos)
		}
		if op >= NumOps {
			return nil, NewErrorAt(ErrMalformedInput, "opcode beyond metadata table", pos)
		}
		words := spirv[pos : pos+int(instrLen)*4]

		if shouldStrip(op, opts) {
			pos += int(instrLen) * 4
			continue
		}

		if op == OpMemberDecorate {
			encLen := EncodeLen(op, instrLen)
			remapped := RemapOp(op)
			out = AppendVarint(out, PackLengthOp(encLen, remapped))
			pos = encodeMemberDecorateRun(&out, spirv, pos, end, &prevDecorate)
			continue
		}

		writeOp := op
		compact, components := tryVectorShuffleCompact(op, instrLen, words)
		if compact {
			writeOp = OpVectorShuffleCompact
		}

		encLen := EncodeLen(writeOp, instrLen)
		remapped := RemapOp(writeOp)
		out = AppendVarint(out, PackLengthOp(encLen, remapped))

		ioffs := uint32(1)

		if OpTable[op].HasType {
			out = AppendVarint(out, readWord(words, int(ioffs)*4))
			ioffs++
		}

		if OpTable[op].HasResult {
			result := readWord(words, int(ioffs)*4)
			out = AppendVarint(out, ZigEncode(int32(result-prevResult)))
			prevResult = result
			ioffs++
		}

		if op == OpDecorate {
			target := readWord(words, int(ioffs)*4)
			out = AppendVarint(out, ZigEncode(int32(target-prevDecorate)))
			prevDecorate = target
			ioffs++
		}

		relativeCount := OpTable[op].DeltaFromResult
		for i := uint8(0); i < relativeCount && ioffs < instrLen; i, ioffs = i+1, ioffs+1 {
			word := readWord(words, int(ioffs)*4)
			out = AppendVarint(out, ZigEncode(int32(prevResult-word)))
		}

		switch {
		case compact:
			var b byte
			for i, c := range components {
				b |= byte(c&3) << uint((3-i)*2)
			}
			out = append(out, b)
		case OpTable[op].VarRest:
			for ; ioffs < instrLen; ioffs++ {
				out = AppendVarint(out, readWord(words, int(ioffs)*4))
			}
		default:
			for ; ioffs < instrLen; ioffs++ {
				out = appendWord(out, readWord(words, int(ioffs)*4))
			}
		}

		pos += int(instrLen) * 4
	}

	return out, nil
}

func shouldStrip(op uint32, opts EncodeOptions) bool {
	if opts.StripDebugInfo {
		return debugOps[op]
	}
	if opts.StripOnlyLines {
		return op == OpLine || op == 317 // Line, NoLine
	}
	return false
}

// tryVectorShuffleCompact reports whether a VectorShuffle instruction's
// swizzle components all fit the compact form's 2-bit-per-component
// encoding, and returns them in order if so.
func tryVectorShuffleCompact(op, instrLen uint32, words []byte) (bool, []uint32) {
	if op != OpVectorShuffle || instrLen > 9 {
		return false, nil
	}
	// header + type + result + 2 vector operands = 5 fixed words.
	compCount := int(instrLen) - 5
	if compCount < 0 || compCount > 4 {
		return false, nil
	}
	comps := make([]uint32, compCount)
	for i := 0; i < compCount; i++ {
		v := readWord(words, (5+i)*4)
		if v > 3 {
			return false, nil
		}
		comps[i] = v
	}
	return true, comps
}

// encodeMemberDecorateRun encodes one or more consecutive MemberDecorate
// instructions sharing a target id as a single run packet, and returns
// the byte offset of the next unconsumed SPIR-V instruction.
func encodeMemberDecorateRun(out *[]byte, spirv []byte, pos, end int, prevDecorate *uint32) int {
	target := readWord(spirv, pos+4)

	type member struct {
		index uint32
		dec   uint32
		extra []byte // raw extra operand words
	}
	var members []member

	p := pos
	for p < end {
		header := readWord(spirv, p)
		instrLen := header >> 16
		op := header & 0xFFFF
		if op != OpMemberDecorate || instrLen < 4 {
			break
		}
		if readWord(spirv, p+4) != target {
			break
		}
		extra := spirv[p+16 : p+int(instrLen)*4]
		members = append(members, member{
			index: readWord(spirv, p+8),
			dec:   readWord(spirv, p+12),
			extra: extra,
		})
		p += int(instrLen) * 4
	}

	out2 := *out
	out2 = AppendVarint(out2, ZigEncode(int32(target-*prevDecorate)))
	*prevDecorate = target
	out2 = append(out2, byte(len(members)))

	prevIndex := uint32(0)
	prevOffset := uint32(0)
	for _, m := range members {
		out2 = AppendVarint(out2, m.index-prevIndex)
		prevIndex = m.index
		out2 = AppendVarint(out2, m.dec)

		knownExtraOps := DecorationExtraOps(m.dec)
		extraWords := len(m.extra) / 4
		if knownExtraOps == -1 {
			out2 = AppendVarint(out2, uint32(extraWords))
		}
		if m.dec == decorationOffset {
			offset := readWord(m.extra, 0)
			out2 = AppendVarint(out2, offset-prevOffset)
			prevOffset = offset
		} else {
			for i := 0; i < extraWords; i++ {
				out2 = AppendVarint(out2, readWord(m.extra, i*4))
			}
		}
	}
	*out = out2
	return p
}
