package common

// WipeByteArray zeroes buf in place. Use it to scrub passwords and other
// secrets once they are no longer needed. Safe on nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
