package edge

// Clamp01 clamps v to the closed unit interval [0,1].
// NaN is treated as zero so a corrupted record can never poison a
// downstream product.
//
// Complexity: O(1).
func Clamp01(v float64) float64 {
	if !(v > UnitMin) { // catches v <= 0 and NaN in one comparison
		return UnitMin
	}
	if v > UnitMax {
		return UnitMax
	}

	return v
}

// New returns the defaulted v4 edge payload attached when a connection
// is first drawn: weight 0.5, beliefExists 0.7, beliefStrength 0.5,
// linear form, influence-weight kind.
func New() Data {
	return Data{
		Weight:         DefaultWeight,
		BeliefExists:   DefaultBeliefExists,
		BeliefStrength: DefaultBeliefStrength,
		FunctionType:   Linear,
		Kind:           KindInfluenceWeight,
		Style:          StyleSolid,
		Curvature:      DefaultCurvature,
		SchemaVersion:  CurrentSchemaVersion,
	}
}

// Normalize returns a copy of d with every unit-interval field clamped
// to [0,1] and the schema version stamped to current. The receiver is
// not mutated. Callers must route every record through Normalize
// before storing or evaluating it.
//
// Complexity: O(len(FunctionParams)).
func (d Data) Normalize() Data {
	out := d
	out.Weight = Clamp01(d.Weight)
	out.BeliefExists = Clamp01(d.BeliefExists)
	out.BeliefStrength = Clamp01(d.BeliefStrength)
	if d.Confidence != nil {
		c := Clamp01(*d.Confidence)
		out.Confidence = &c
	}
	out.FunctionParams = d.FunctionParams.Clone()
	out.SchemaVersion = CurrentSchemaVersion

	return out
}

// ConfidenceOrZero returns the stored sibling share as a fraction,
// or 0 when none has been set.
func (d Data) ConfidenceOrZero() float64 {
	if d.Confidence == nil {
		return 0
	}

	return Clamp01(*d.Confidence)
}
