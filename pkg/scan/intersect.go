package scan

// intersectWithIndex walks two ascending ID lists and invokes fn for every
// common element along with its position in each list. Returns the number of
// matches. The positional output is what lets triangle counting locate
// per-edge counter slots without re-searching.
func intersectWithIndex(a, b []uint32, fn func(common, posA, posB uint32)) uint32 {
	var matches uint32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			fn(a[i], uint32(i), uint32(j))
			matches++
			i++
			j++
		}
	}
	return matches
}
