package seed

// ShuffleOptions deterministically rearranges a set of answer options,
// returning the new option order and the new index of the correct answer.
//
// The correct option lands at index seed mod len(options); the remaining
// options are permuted by the seeded PRNG. Fewer than 3 options is a
// degenerate set and is returned unchanged.
func ShuffleOptions(options []string, correctIndex int, s uint32) ([]string, int) {
	n := len(options)
	if n < 3 || correctIndex < 0 || correctIndex >= n {
		return options, correctIndex
	}

	correct := options[correctIndex]
	wrong := make([]string, 0, n-1)
	for i, opt := range options {
		if i != correctIndex {
			wrong = append(wrong, opt)
		}
	}

	// Fisher-Yates on the wrong options.
	r := New(s)
	for i := len(wrong) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		wrong[i], wrong[j] = wrong[j], wrong[i]
	}

	target := int(s % uint32(n))
	out := make([]string, 0, n)
	w := 0
	for i := 0; i < n; i++ {
		if i == target {
			out = append(out, correct)
			continue
		}
		out = append(out, wrong[w])
		w++
	}
	return out, target
}
