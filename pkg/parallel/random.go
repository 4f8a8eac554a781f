package parallel

import "math"

// RandomNormals returns count pseudorandom standard-normal floats derived
// deterministically from seed. Element i depends only on (seed, i), so the
// output is identical regardless of how the fill is scheduled.
func RandomNormals(count int, seed uint64) []float32 {
	normals := make([]float32, count)
	base := Hash64(seed)
	For(count, func(i int) {
		// Box-Muller over two independent uniforms in (0, 1].
		u1 := uniform01(Hash64(base + uint64(2*i)))
		u2 := uniform01(Hash64_2(base + uint64(2*i+1)))
		normals[i] = float32(math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2))
	})
	return normals
}

// uniform01 maps a 64-bit hash to a uniform float in (0, 1].
func uniform01(h uint64) float64 {
	return (float64(h>>11) + 1) / float64(1<<53)
}
