package smolv

// Real SPIR-V opcodes referenced by the remap table and the instruction-
// specific length bias below. Named rather than left as bare literals
// since both appear in several unrelated places.
const (
	OpNop              = 0
	OpUndef            = 1
	OpSourceContinued  = 2
	OpSource           = 3
	OpSourceExtension  = 4
	OpString           = 7
	OpLine             = 8
	OpExtension        = 10
	OpExtInstImport    = 11
	OpVectorShuffleCompact = 13
	OpMemoryModel      = 14
	OpEntryPoint       = 15
	OpTypePointer      = 32
	OpVariable         = 59
	OpLoad             = 61
	OpStore            = 62
	OpAccessChain      = 65
	OpMemberDecorate   = 72
	OpDecorate         = 71
	OpFNegate          = 127
	OpFAdd             = 129
	OpFMul             = 133
	OpVectorShuffle    = 79
	OpLabel            = 248
)

// remapPairs lists the opcodes that trade places under RemapOp. The
// mapping is its own inverse, so a single table built from these pairs
// serves both encode and decode directions.
var remapPairs = [12][2]uint32{
	{OpDecorate, OpNop},
	{OpLoad, OpUndef},
	{OpStore, OpSourceContinued},
	{OpAccessChain, OpSource},
	{OpVectorShuffle, OpSourceExtension},
	{OpMemberDecorate, OpString},
	{OpLabel, OpLine},
	{OpVariable, 9},
	{OpFMul, OpExtension},
	{OpFAdd, OpExtInstImport},
	{OpTypePointer, OpMemoryModel},
	{OpFNegate, OpEntryPoint},
}

var remapTable [NumOps]uint32

// remappedOps is the set of real opcodes that take part in a remap pair,
// i.e. the first element of each entry in remapPairs.
var remappedOps = map[uint32]bool{}

func init() {
	for i := range remapTable {
		remapTable[i] = uint32(i)
	}
	for _, p := range remapPairs {
		remapTable[p[0]], remapTable[p[1]] = remapTable[p[1]], remapTable[p[0]]
		remappedOps[p[0]] = true
	}
}

// RemapOp swaps a handful of high-frequency opcodes into the low range
// 0-15 so the common case fits in a single varint byte. It is its own
// inverse: calling it twice returns the original opcode, which is what
// lets Encode and Decode share one table.
func RemapOp(op uint32) uint32 {
	if int(op) >= len(remapTable) {
		return op
	}
	return remapTable[op]
}

// EncodeLen strips the fixed bias that DecodeLen adds back, so the
// varint-packed length for these ops takes fewer bytes.
func EncodeLen(op uint32, length uint32) uint32 {
	length--
	switch op {
	case OpVectorShuffle, OpVectorShuffleCompact:
		length -= 4
	case OpDecorate:
		length -= 2
	case OpLoad, OpAccessChain:
		length -= 3
	}
	return length
}

// DecodeLen reverses EncodeLen: given the opcode already remapped back to
// its real value, it reconstructs the true SPIR-V instruction word count.
func DecodeLen(op uint32, length uint32) uint32 {
	length++
	switch op {
	case OpVectorShuffle, OpVectorShuffleCompact:
		length += 4
	case OpDecorate:
		length += 2
	case OpLoad, OpAccessChain:
		length += 3
	}
	return length
}

// PackLengthOp folds a (length, opcode) pair into the single varint-
// friendly word used by the wire format: the low 4 bits of the opcode
// and the low 3 bits of the length share the low byte.
func PackLengthOp(length, op uint32) uint32 {
	return ((length >> 4) << 20) | ((op & 0xFFF0) << 4) | ((length & 0xF) << 4) | (op & 0xF)
}

// UnpackLengthOp reverses PackLengthOp, returning the raw (still
// swapped) opcode and length exactly as encoded in val.
func UnpackLengthOp(val uint32) (length, op uint32) {
	length = ((val >> 20) << 4) | ((val >> 4) & 0xF)
	op = ((val >> 4) & 0xFFF0) | (val & 0xF)
	return length, op
}
