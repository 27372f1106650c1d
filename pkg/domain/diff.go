package domain

import (
	"reflect"
)

// StateDiff represents the changes between two states.
type StateDiff struct {
	// Fields lists the top-level struct fields whose values differ, in declaration order.
	// It is empty when the states are not structs.
	Fields []string `json:"fields,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// It returns nil when both values are deeply equal.
func Diff(oldState, newState any) *StateDiff {
	if reflect.DeepEqual(oldState, newState) {
		return nil
	}

	diff := &StateDiff{}

	ov := reflect.ValueOf(oldState)
	nv := reflect.ValueOf(newState)
	ov, nv = indirect(ov), indirect(nv)
	if !ov.IsValid() || !nv.IsValid() || ov.Type() != nv.Type() || nv.Kind() != reflect.Struct {
		return diff
	}

	t := nv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !reflect.DeepEqual(ov.Field(i).Interface(), nv.Field(i).Interface()) {
			diff.Fields = append(diff.Fields, f.Name)
		}
	}

	return diff
}

// indirect follows pointers until a non-pointer value or nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsEmpty checks if the diff names no changed fields.
func (d *StateDiff) IsEmpty() bool {
	return d == nil || len(d.Fields) == 0
}
