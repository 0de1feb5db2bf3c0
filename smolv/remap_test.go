package smolv

import "testing"

func TestRemapOpIsInvolution(t *testing.T) {
	for op := uint32(0); op < NumOps; op++ {
		if got := RemapOp(RemapOp(op)); got != op {
			t.Errorf("RemapOp(RemapOp(%d)) = %d, want %d", op, got, op)
		}
	}
}

func TestRemapOpKnownPairs(t *testing.T) {
	cases := []struct{ a, b uint32 }{
		{OpDecorate, OpNop},
		{OpLoad, OpUndef},
		{OpStore, OpSourceContinued},
		{OpAccessChain, OpSource},
		{OpVectorShuffle, OpSourceExtension},
		{OpMemberDecorate, OpString},
		{OpLabel, OpLine},
		{OpFMul, OpExtension},
		{OpFAdd, OpExtInstImport},
		{OpTypePointer, OpMemoryModel},
		{OpFNegate, OpEntryPoint},
	}
	for _, c := range cases {
		if got := RemapOp(c.a); got != c.b {
			t.Errorf("RemapOp(%d) = %d, want %d", c.a, got, c.b)
		}
		if got := RemapOp(c.b); got != c.a {
			t.Errorf("RemapOp(%d) = %d, want %d", c.b, got, c.a)
		}
	}
}

func TestRemapOpUnpairedOpcodesPassThrough(t *testing.T) {
	for _, op := range []uint32{12, 13, 16, 17, 100} {
		if got := RemapOp(op); got != op {
			t.Errorf("RemapOp(%d) = %d, want unchanged", op, got)
		}
	}
}

func TestLengthBiasRoundTrip(t *testing.T) {
	ops := []uint32{OpVectorShuffle, OpVectorShuffleCompact, OpDecorate, OpLoad, OpAccessChain, OpStore}
	for _, op := range ops {
		for length := uint32(1); length < 20; length++ {
			enc := EncodeLen(op, length)
			got := DecodeLen(op, enc)
			if got != length {
				t.Errorf("op %d length %d: round-tripped to %d via encoded %d", op, length, got, enc)
			}
		}
	}
}

func TestPackUnpackLengthOp(t *testing.T) {
	cases := []struct{ length, op uint32 }{
		{1, 0}, {7, 15}, {8, 16}, {100, 366}, {0xFFF, 0xFFFF},
	}
	for _, c := range cases {
		packed := PackLengthOp(c.length, c.op)
		gotLen, gotOp := UnpackLengthOp(packed)
		if gotLen != c.length || gotOp != c.op {
			t.Errorf("pack/unpack(%d,%d) = (%d,%d)", c.length, c.op, gotLen, gotOp)
		}
	}
}
