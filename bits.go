package steg

// eachBit visits the MSB-first bit expansion of data. fn receives the
// absolute bit index and the bit value (0 or 1).
func eachBit(data []byte, fn func(i int, bit byte)) {
	for i, b := range data {
		for j := 0; j < 8; j++ {
			fn(i*8+j, (b>>(7-j))&1)
		}
	}
}

// packBits groups a run of 0/1 values MSB-first into bytes.
// len(bits) must be a multiple of 8.
func packBits(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i, bit := range bits {
		out[i/8] = out[i/8]<<1 | bit
	}
	return out
}
