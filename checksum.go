package steg

import "crypto/md5" // #nosec G501 -- 2-byte tamper check, not a security primitive

// checksumLen is the number of digest bytes stored in a text frame.
const checksumLen = 2

// checksum returns the first two bytes of the MD5 digest of data. It is
// computed over the plaintext payload before masking and verified after
// unmasking, which is what lets the text path report a wrong password.
func checksum(data []byte) []byte {
	sum := md5.Sum(data) // #nosec G401
	return sum[:checksumLen]
}
