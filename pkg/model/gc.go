package model

// GCFraction is the G+C fraction of seq.
// S counts as G/C; only unambiguous bases (ACGTU) plus S and W count towards the length.
// An empty or all-ambiguous sequence gives 0.
func GCFraction(seq string) float64 {
	var gc, length int

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'S', 'g', 'c', 's':
			gc++
			length++
		case 'A', 'T', 'W', 'U', 'a', 't', 'w', 'u':
			length++
		}
	}

	if length == 0 {
		return 0
	}

	return float64(gc) / float64(length)
}
