package smolv

import "encoding/binary"

// ReadVarint reads a LEB128-style varint from b, returning the decoded
// value and the number of bytes consumed. It reports ok=false if b runs
// out before a terminating byte (high bit clear) is seen.
func ReadVarint(b []byte) (val uint32, n int, ok bool) {
	var shift uint
	for n < len(b) {
		c := b[n]
		val |= uint32(c&0x7f) << shift
		shift += 7
		n++
		if c&0x80 == 0 {
			return val, n, true
		}
		if shift >= 35 {
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// AppendVarint appends the LEB128-style varint encoding of v to dst and
// returns the extended slice.
func AppendVarint(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// ZigEncode maps a signed delta onto an unsigned value so that small
// magnitudes (positive or negative) produce small varints.
func ZigEncode(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// ZigDecode reverses ZigEncode.
func ZigDecode(u uint32) int32 {
	if u&1 != 0 {
		return int32(u>>1) ^ -1
	}
	return int32(u >> 1)
}

// readWord reads a little-endian 32-bit word from b at offset off.
func readWord(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// appendWord appends the little-endian encoding of v to dst.
func appendWord(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}
