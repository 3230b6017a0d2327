package derive

// maxUint32 spelled out once; math.MaxUint32 is untyped and the sampler
// arithmetic must stay in uint32.
const maxUint32 = ^uint32(0)

// UniformUint32 draws a uniformly distributed value in [0, n) from src
// using rejection sampling. n must be at least 1.
//
// A plain `word % n` is biased toward low values whenever n does not
// evenly divide 2³². The sampler instead computes the largest zone of the
// 32-bit space that n divides cleanly and redraws any word falling in the
// short tail above it, so every residue is equally likely. The redraw loop
// terminates quickly in practice: the rejection probability is below n/2³²
// per draw.
func UniformUint32(src WordSource, n uint32) uint32 {
	zone := maxUint32 - maxUint32%n
	for {
		if v := src.Next(); v < zone {
			return v % n
		}
	}
}
