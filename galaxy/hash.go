package galaxy

// Hash maps a float32 seed to a reproducible value in [0, 1). It is a cheap
// deterministic scrambler, not a cryptographic hash: the same seed always
// produces the same output and there is no hidden state.
//
// The seed is first folded by fract(seed * 0.1031) so that large seeds
// (particle index plus salt offsets in the thousands) do not lose precision
// before mixing.
func Hash(seed float32) float32 {
	p := fract(seed * 0.1031)
	h := p + 19.19
	return fract(h * (h + 47.43) * p)
}

// hashAt draws one of several independent-looking values for a particle.
// saltOffset separates the star and cloud streams; salt (1..7) selects the
// attribute channel within one particle.
func hashAt(index, saltOffset int, salt float32) float32 {
	return Hash(float32(index+saltOffset) + salt)
}
