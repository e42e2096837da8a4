package light

// Selector picks one light out of a scene's light list for next-event
// estimation. The pick is uniform over the light list (pdf_pick_light
// = 1/|lights|, spec.md §6's path-tracing integrator), not weighted by
// power: weighting by power would need to be paired with dividing the
// contribution back out, and the grounded integrator doesn't do that.
type Selector struct {
	lights []Light
}

func NewSelector(lights []Light) *Selector {
	return &Selector{lights: lights}
}

func (s *Selector) Count() int { return len(s.lights) }

// Pick draws one light uniformly and returns it along with the pick
// probability 1/|lights|.
func (s *Selector) Pick(u float32) (Light, float32) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0
	}
	idx := int(u * float32(n))
	if idx >= n {
		idx = n - 1
	}
	return s.lights[idx], 1.0 / float32(n)
}

// PickPdf is the selection probability any single light would have
// had, needed when a path hits a light directly via BSDF sampling and
// must reconstruct what pdf_pick_light would have been for the MIS
// weight.
func (s *Selector) PickPdf() float32 {
	if len(s.lights) == 0 {
		return 0
	}
	return 1.0 / float32(len(s.lights))
}
