package smolv

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func putWord(buf []byte, v uint32) []byte {
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], v)
	return append(buf, w[:]...)
}

// buildMinimalModule assembles a tiny but well-formed SPIR-V module:
// OpCapability Shader, OpMemoryModel Logical GLSL450, OpTypeVoid,
// OpTypeFunction %void. Good enough to exercise header handling and a
// handful of real opcodes without a real shader compiler on hand.
func buildMinimalModule() []byte {
	var b []byte
	b = putWord(b, spirvMagic)
	b = putWord(b, 0x00010000) // version 1.0
	b = putWord(b, 0)          // generator
	b = putWord(b, 3)          // bound
	b = putWord(b, 0)          // schema

	b = putWord(b, (2<<16)|17) // OpCapability
	b = putWord(b, 1)          // Shader

	b = putWord(b, (3<<16)|14) // OpMemoryModel
	b = putWord(b, 0)          // Logical
	b = putWord(b, 1)          // GLSL450

	b = putWord(b, (2<<16)|19) // OpTypeVoid %1
	b = putWord(b, 1)

	b = putWord(b, (3<<16)|33) // OpTypeFunction %2 %1
	b = putWord(b, 2)
	b = putWord(b, 1)

	return b
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := buildMinimalModule()

	encoded, err := Encode(original, EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) == 0 {
		t.Fatal("Encode produced no output")
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, original)
	}
}

func TestDecodeWithAnalysisRecordsHits(t *testing.T) {
	original := buildMinimalModule()
	encoded, err := Encode(original, EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	analysis := NewDecodeAnalysis()
	if _, err := DecodeWithAnalysis(encoded, analysis); err != nil {
		t.Fatalf("DecodeWithAnalysis: %v", err)
	}

	if analysis.SpvOps["SpvOpTypeVoid"] == 0 && len(analysis.SpvOps) == 0 {
		t.Error("expected DecodeWithAnalysis to record opcode hits")
	}
	if analysis.Blocks[BlockOpHasResult] == 0 {
		t.Errorf("expected %s block to be hit by OpTypeVoid/OpTypeFunction", BlockOpHasResult)
	}
}

func TestEncodeRejectsNonSpirv(t *testing.T) {
	_, err := Encode([]byte{1, 2, 3}, EncodeOptions{})
	if err == nil {
		t.Fatal("expected error for too-short input")
	}
	if !IsMalformedInput(err) {
		t.Errorf("expected MalformedInput, got %v", err)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	bad := buildMinimalModule()
	binary.LittleEndian.PutUint32(bad[0:4], 0xdeadbeef)
	_, err := Decode(bad)
	if err == nil {
		t.Fatal("expected error for bad SPIR-V magic")
	}

	_, err = Encode(bad, EncodeOptions{})
	if err == nil {
		t.Fatal("expected Encode to reject bad magic too")
	}
}

func TestEncoderFlagByteLayout(t *testing.T) {
	original := buildMinimalModule()

	plain, err := Encode(original, EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	stripped, err := Encode(original, EncodeOptions{StripDebugInfo: true})
	if err != nil {
		t.Fatalf("Encode with StripDebugInfo: %v", err)
	}

	plainFlags := readWord(plain, 4) >> 24
	strippedFlags := readWord(stripped, 4) >> 24

	if plainFlags != 0 {
		t.Errorf("plain encode flag byte = %#x, want 0", plainFlags)
	}
	if strippedFlags&flagStripDebugInfo == 0 {
		t.Errorf("StripDebugInfo encode flag byte = %#x, want bit 0 set", strippedFlags)
	}

	// Decode must mask the flag byte back out so the version word it
	// reconstructs is bit-identical to the source module's.
	decoded, err := Decode(stripped)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if readWord(decoded, 4) != readWord(original, 4) {
		t.Errorf("decoded version word = %#x, want %#x", readWord(decoded, 4), readWord(original, 4))
	}
}

// buildModuleWithDebugInfo assembles buildMinimalModule's instructions
// interleaved with OpSource, OpName, OpLine and OpNoLine, so stripping can
// be asserted against a module that actually carries debug info.
func buildModuleWithDebugInfo() []byte {
	var b []byte
	b = putWord(b, spirvMagic)
	b = putWord(b, 0x00010000) // version 1.0
	b = putWord(b, 0)          // generator
	b = putWord(b, 3)          // bound
	b = putWord(b, 0)          // schema

	b = putWord(b, (2<<16)|17) // OpCapability
	b = putWord(b, 1)          // Shader

	b = putWord(b, (2<<16)|3) // OpSource GLSL
	b = putWord(b, 450)

	b = putWord(b, (3<<16)|5) // OpName %1 (one word of "name" payload)
	b = putWord(b, 1)
	b = putWord(b, 0x656d616e) // "name"

	b = putWord(b, (3<<16)|14) // OpMemoryModel
	b = putWord(b, 0)          // Logical
	b = putWord(b, 1)          // GLSL450

	b = putWord(b, (4<<16)|8) // OpLine %file 1 1
	b = putWord(b, 1)
	b = putWord(b, 1)
	b = putWord(b, 1)

	b = putWord(b, (2<<16)|19) // OpTypeVoid %2
	b = putWord(b, 2)

	b = putWord(b, (1<<16)|317) // OpNoLine

	b = putWord(b, (3<<16)|33) // OpTypeFunction %3 %2
	b = putWord(b, 3)
	b = putWord(b, 2)

	return b
}

// instructionOpcodes walks a decoded SPIR-V module and returns the set of
// opcodes present, keyed by opcode number.
func instructionOpcodes(t *testing.T, module []byte) map[uint32]bool {
	t.Helper()
	seen := map[uint32]bool{}
	pos := outHeaderLen
	for pos < len(module) {
		header := readWord(module, pos)
		instrLen := header >> 16
		op := header & 0xFFFF
		if instrLen == 0 {
			t.Fatalf("zero-length instruction at byte %d", pos)
		}
		seen[op] = true
		pos += int(instrLen) * 4
	}
	return seen
}

func TestStripDebugInfoDropsDebugOpcodes(t *testing.T) {
	original := buildModuleWithDebugInfo()

	before := instructionOpcodes(t, original)
	for _, op := range []uint32{3, 5, 8, 317} {
		if !before[op] {
			t.Fatalf("test module doesn't actually contain opcode %d, fix the fixture", op)
		}
	}

	encoded, err := Encode(original, EncodeOptions{StripDebugInfo: true})
	if err != nil {
		t.Fatalf("Encode with StripDebugInfo: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	after := instructionOpcodes(t, decoded)
	for _, op := range []uint32{3, 5, 8, 317} {
		if after[op] {
			t.Errorf("opcode %d should have been stripped by StripDebugInfo, still present", op)
		}
	}
	if !after[17] || !after[14] || !after[19] || !after[33] {
		t.Errorf("StripDebugInfo dropped a non-debug instruction, got opcodes %v", after)
	}
}

func TestStripOnlyLinesKeepsNamesAndSources(t *testing.T) {
	original := buildModuleWithDebugInfo()

	encoded, err := Encode(original, EncodeOptions{StripOnlyLines: true})
	if err != nil {
		t.Fatalf("Encode with StripOnlyLines: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	after := instructionOpcodes(t, decoded)
	for _, op := range []uint32{8, 317} {
		if after[op] {
			t.Errorf("opcode %d should have been stripped by StripOnlyLines, still present", op)
		}
	}
	for _, op := range []uint32{3, 5} {
		if !after[op] {
			t.Errorf("opcode %d should survive StripOnlyLines, missing", op)
		}
	}
}

func TestDecodeRejectsOpcodeBeyondTable(t *testing.T) {
	encoded, err := Encode(buildMinimalModule(), EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Corrupt the first instruction's length+op varint to claim an
	// opcode past the end of OpTable. The header is 6 words (24 bytes);
	// PackLengthOp's low 4 bits of op sit in the low nibble of the first
	// varint byte, so this keeps the varint well-formed while making the
	// decoded opcode huge.
	mutated := append([]byte(nil), encoded...)
	mutated[24] = 0xFF
	mutated[25] = 0xFF
	mutated[26] = 0xFF
	mutated[27] = 0x0F

	_, err = Decode(mutated)
	if err == nil {
		t.Fatal("expected error for opcode beyond metadata table")
	}
	if !IsMalformedInput(err) {
		t.Errorf("expected MalformedInput, got %v", err)
	}
}

func TestEncodeRejectsOpcodeBeyondTable(t *testing.T) {
	module := buildMinimalModule()
	// Corrupt OpCapability's header word (byte 20) to claim opcode 0xFFFF,
	// far past MaxOpcode, while keeping a plausible instruction length.
	binary.LittleEndian.PutUint32(module[20:24], (2<<16)|0xFFFF)

	_, err := Encode(module, EncodeOptions{})
	if err == nil {
		t.Fatal("expected error for opcode beyond metadata table")
	}
	if !IsMalformedInput(err) {
		t.Errorf("expected MalformedInput, got %v", err)
	}
}

func TestTryVectorShuffleCompact(t *testing.T) {
	// header, type, result, vecA, vecB, 4 components all < 4: compactable.
	words := make([]byte, 9*4)
	for i, v := range []uint32{0, 0, 0, 0, 0, 1, 2, 3, 0} {
		binary.LittleEndian.PutUint32(words[i*4:], v)
	}
	ok, comps := tryVectorShuffleCompact(OpVectorShuffle, 9, words)
	if !ok {
		t.Fatal("expected compactable swizzle")
	}
	if len(comps) != 4 {
		t.Fatalf("got %d components, want 4", len(comps))
	}

	// a component >= 4 cannot be represented in 2 bits.
	binary.LittleEndian.PutUint32(words[8*4:], 7)
	ok, _ = tryVectorShuffleCompact(OpVectorShuffle, 9, words)
	if ok {
		t.Fatal("expected non-compactable swizzle with out-of-range component")
	}
}
