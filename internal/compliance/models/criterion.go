package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Criterion restricts a categorical regulation attribute (state, industry,
// business type) to an allowed set of values, or leaves it unrestricted.
//
// Invariants:
//   - An unrestricted criterion allows every value, including values outside
//     the intake enumerations. Membership is literal string equality.
//   - At the wire and storage boundaries an empty array is the documented
//     sentinel for "unrestricted". Inside the domain the distinction is
//     carried explicitly so "no data available" (absent/NULL, a contract
//     violation) can never be confused with "applies universally".
//
// The zero value is a restricted criterion that allows nothing; construct
// values with Unrestricted, RestrictedTo, or CriterionFromSlice.
type Criterion struct {
	unrestricted bool
	values       []string
}

// Unrestricted returns a criterion that imposes no constraint.
func Unrestricted() Criterion {
	return Criterion{unrestricted: true}
}

// RestrictedTo returns a criterion allowing exactly the given values.
func RestrictedTo(values ...string) Criterion {
	c := Criterion{values: make([]string, len(values))}
	copy(c.values, values)
	return c
}

// CriterionFromSlice decodes the wire/storage representation: an empty (but
// present) list means unrestricted. Callers must reject absent lists before
// reaching here; this function cannot see absence.
func CriterionFromSlice(values []string) Criterion {
	if len(values) == 0 {
		return Unrestricted()
	}
	return RestrictedTo(values...)
}

// Allows reports whether the criterion permits the given value.
func (c Criterion) Allows(value string) bool {
	if c.unrestricted {
		return true
	}
	for _, v := range c.values {
		if v == value {
			return true
		}
	}
	return false
}

// IsUnrestricted reports whether the criterion imposes no constraint.
func (c Criterion) IsUnrestricted() bool {
	return c.unrestricted
}

// Values returns a copy of the allowed set. Empty for unrestricted criteria,
// matching the wire sentinel.
func (c Criterion) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// MarshalJSON emits the wire sentinel form: an array of allowed values,
// empty when unrestricted.
func (c Criterion) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Values())
}

// UnmarshalJSON decodes the wire form: empty means unrestricted. A literal
// null is "no data available", not "unrestricted", and is rejected here
// because json.Unmarshal would otherwise fold it into the empty case.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("criterion must be a JSON array, got null")
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*c = CriterionFromSlice(values)
	return nil
}
