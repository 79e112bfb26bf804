package galaxy

import "testing"

func TestHashDeterminism(t *testing.T) {
	seeds := []float32{0, 1, 7, 42.5, 1337, 9999, 10007, 123456}

	for _, seed := range seeds {
		first := Hash(seed)
		for i := 0; i < 10; i++ {
			if got := Hash(seed); got != first {
				t.Fatalf("Hash(%v) not deterministic: %v then %v", seed, first, got)
			}
		}
	}
}

func TestHashRange(t *testing.T) {
	// Covers the full seed range the generator uses: particle index plus the
	// cloud salt offset plus the highest salt.
	for i := 0; i < 50000; i++ {
		seed := float32(i) + 7
		v := Hash(seed)
		if v < 0 || v >= 1 {
			t.Fatalf("Hash(%v) = %v, want [0,1)", seed, v)
		}
	}
}

func TestHashApproximateUniformity(t *testing.T) {
	// Not a cryptographic test: just check no decile is wildly over- or
	// under-populated across a large sample.
	const samples = 100000
	var bins [10]int
	for i := 0; i < samples; i++ {
		v := Hash(float32(i) + 1)
		bins[int(v*10)]++
	}

	expected := samples / 10
	for b, count := range bins {
		if count < expected/2 || count > expected*2 {
			t.Errorf("bin %d has %d samples, expected around %d", b, count, expected)
		}
	}
}

func TestHashSaltsDiffer(t *testing.T) {
	// Different salts on the same index should give different draws for
	// essentially every particle.
	same := 0
	for i := 0; i < 1000; i++ {
		if hashAt(i, 0, 1) == hashAt(i, 0, 2) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("%d/1000 indices collide across salts 1 and 2", same)
	}
}

func TestHashStreamsNeverAlias(t *testing.T) {
	// The cloud stream is offset by 10000 so cloud i never reuses star i's
	// draws for any population smaller than the offset.
	for i := 0; i < 1000; i++ {
		star := hashAt(i, starSaltOffset, 1)
		cloud := hashAt(i, cloudSaltOffset, 1)
		if star == cloud {
			t.Errorf("index %d: star and cloud streams alias (%v)", i, star)
		}
	}
}
