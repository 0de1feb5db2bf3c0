// Package smolv implements the SMOL-V wire codec: a bit-exact, symmetric
// encoder and decoder that compress a SPIR-V shader module into a smaller
// byte stream using opcode remapping, varint/zigzag encoding of operand
// deltas, and a handful of instruction-specific compact forms.
//
// The codec is a pure, in-memory transform: Encode consumes a SPIR-V binary
// and produces a SMOL-V byte stream; Decode reverses it exactly. Both sides
// share the same op metadata table (see OpTable) and the same opcode/length
// packing rules (see RemapOp, EncodeLen, DecodeLen).
package smolv
