package gesture

// Two-contact and three-contact gesture math. Each evaluator reads only the
// contacts it is given and reports ok=false when the geometry is degenerate
// for that sample, in which case nothing is emitted.

// evalPinch returns the signed change in separation between a and b.
// Positive values mean the contacts are spreading apart.
func evalPinch(a, b Contact) (float64, bool) {
	cur := a.Position.Dist(b.Position)
	prev := a.Previous().Dist(b.Previous())
	pinch := cur - prev
	return pinch, isFinite(pinch)
}

// evalRotate returns how far the line from b to a turned during the last
// sample, in degrees scaled by RotateGain.
func evalRotate(a, b Contact) (float64, bool) {
	cur := a.Position.Sub(b.Position)
	prev := a.Previous().Sub(b.Previous())
	deg, ok := cur.AngleTo(prev)
	if !ok {
		return 0, false
	}
	return deg * RotateGain, true
}

// agreement is how well d points along dir: the cosine between them, or 0
// when either has no direction.
func agreement(d, dir Vec2) float64 {
	cos, ok := d.NormalizedDot(dir)
	if !ok {
		return 0
	}
	return cos
}

// twoFingerDirection returns the mean delta of a and b.
func twoFingerDirection(a, b Contact) Vec2 {
	return Mean(a.Delta, b.Delta)
}

// twoFingerConfidence is the weaker of the two contacts' agreement with
// their mean direction, floored at zero. Fingers moving together score 1;
// fingers moving against each other score 0.
func twoFingerConfidence(a, b Contact) float64 {
	dir := twoFingerDirection(a, b)
	c := min(agreement(a.Delta, dir), agreement(b.Delta, dir))
	return max(0, c)
}

// evalPan2 returns the component of motion shared by a and b.
func evalPan2(a, b Contact) (Vec2, bool) {
	// A pure pinch or twist has no shared direction and reports a zero pan,
	// not a dropped sample.
	pan := twoFingerDirection(a, b).Scale(twoFingerConfidence(a, b))
	return pan, pan.IsFinite()
}

// evalPan3 extends the two-finger pan with the third contact's delta,
// weighted by how closely c follows the first two. A stationary third
// contact or a two-finger pan with no direction suppresses the sample.
func evalPan3(a, b, c Contact) (Vec2, bool) {
	dir := twoFingerDirection(a, b)
	conf := twoFingerConfidence(a, b)
	cos, ok := c.Delta.NormalizedDot(dir.Scale(conf))
	if !ok {
		return Vec2{}, false
	}
	weight := min(max(cos, 0), conf)
	pan := dir.Add(c.Delta).Scale(weight)
	return pan, pan.IsFinite()
}
