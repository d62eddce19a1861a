package ga

// Score splits a fitness value into its two passes
type Score struct {
	Mirror    int `json:"mirror"`
	Adjacency int `json:"adjacency"`
	Total     int `json:"total"`
}

// Fitness rewards mirror symmetry and penalizes adjacent repeats.
//
// The mirror pass walks the whole chromosome, so every mirrored pair is counted
// twice (+1 each time if equal, -1 if not). The adjacency pass subtracts 1 for every
// pair of equal neighbours. Fitness is the sum of both.
func (c Chromosome) Fitness() int {
	return c.Breakdown(Options{}).Total
}

// FitnessWith is Fitness under the scoring policy in opts
func (c Chromosome) FitnessWith(opts Options) int {
	return c.Breakdown(opts).Total
}

// Breakdown returns both pass subtotals
func (c Chromosome) Breakdown(opts Options) Score {
	n := len(c)
	end := n
	if opts.HalfMirror {
		end = n / 2
	}

	var s Score
	for i := 0; i < end; i++ {
		if c[i] == c[n-1-i] {
			s.Mirror++
		} else {
			s.Mirror--
		}
	}
	for i := 0; i+1 < n; i++ {
		if c[i] == c[i+1] {
			s.Adjacency--
		}
	}
	s.Total = s.Mirror + s.Adjacency
	return s
}

// Fitness scores the individual's chromosome
func (ind *Individual) Fitness() int {
	return ind.Chromosome.Fitness()
}

// FitnessWith scores the individual's chromosome under opts
func (ind *Individual) FitnessWith(opts Options) int {
	return ind.Chromosome.FitnessWith(opts)
}

// Breakdown returns the individual's per-pass scores
func (ind *Individual) Breakdown(opts Options) Score {
	return ind.Chromosome.Breakdown(opts)
}
