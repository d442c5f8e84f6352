package steg

// Mask applies the symmetric XOR transform to data, keyed by the UTF-8
// bytes of key. Applying Mask twice with the same key restores the input:
// Mask(Mask(d, k), k) == d.
//
// An empty key is the identity and returns data itself without copying.
// Otherwise a new slice is returned and data is left untouched.
func Mask(data []byte, key string) []byte {
	if key == "" {
		return data
	}

	kb := []byte(key)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ kb[i%len(kb)]
	}
	return out
}
