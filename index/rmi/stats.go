package rmi

// Stats describes the trained models.
type Stats struct {
	LeafCount    int
	TrainedLeafs int
	MaxError     int
	MeanError    float64
}

// Stats returns error statistics across the trained leaf models. An
// untrained index reports the zero value.
func (r *RMI) Stats() Stats {
	s := Stats{LeafCount: r.opts.LeafCount}
	if !r.trained {
		return s
	}

	var sum int
	for i := range r.leaves {
		leaf := &r.leaves[i]
		if leaf.end == leaf.start {
			continue
		}
		s.TrainedLeafs++
		sum += leaf.maxError
		if leaf.maxError > s.MaxError {
			s.MaxError = leaf.maxError
		}
	}
	if s.TrainedLeafs > 0 {
		s.MeanError = float64(sum) / float64(s.TrainedLeafs)
	}

	return s
}
