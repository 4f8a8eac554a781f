package parallel

// Hash64 mixes a 64-bit value into a pseudorandom 64-bit value
// (splitmix64 finalizer). Used to spread seeds and derive per-index
// pseudorandom streams.
func Hash64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Hash64_2 is a second independent 64-bit mixer (murmur3 finalizer).
// Keyed hashing schemes that need two hash families use Hash64 for one and
// Hash64_2 for the other.
func Hash64_2(x uint64) uint64 {
	x = (x ^ (x >> 33)) * 0xff51afd7ed558ccd
	x = (x ^ (x >> 33)) * 0xc4ceb9fe1a85ec53
	return x ^ (x >> 33)
}
