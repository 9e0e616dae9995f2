package bluenoise

// Rand is the source of randomness a Sampler draws from.
// We only have two questions;
// - give me a uniform float in [0, 1)
// - give me a uniform int in [0, n)
// The stdlib *math/rand.Rand satisfies this.
//
// A Rand belongs to exactly one Sampler. Sharing one source between
// concurrently running samplers is unsafe unless the source itself is
// synchronized externally (& kills determinism regardless).
type Rand interface {
	// uniform float64 in [0, 1)
	Float64() float64

	// uniform int in [0, n), panics if n <= 0
	Intn(n int) int
}
