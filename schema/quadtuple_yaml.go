package schema

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare scalar (broadcast to all four
// corners) or a 4-element sequence [q1, q2, q3, q4], per spec.md
// section 3.1.
func (q *QuadTuple) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		f, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return fieldErrorf("enc_*_resolution", value.Value, "expected a number or a 4-element list", err)
		}
		*q = Broadcast(f)
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 4 {
			return fieldErrorf("enc_*_resolution", len(value.Content), "expected exactly 4 values (q1..q4)", nil)
		}
		vals := make([]float64, 4)
		for i, n := range value.Content {
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return fieldErrorf("enc_*_resolution", n.Value, "expected a number", err)
			}
			vals[i] = f
		}
		*q = QuadTuple{vals[0], vals[1], vals[2], vals[3]}
		return nil
	default:
		return fieldErrorf("enc_*_resolution", value.Value, "expected a number or a 4-element list", nil)
	}
}
