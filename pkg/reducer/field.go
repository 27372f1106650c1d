package reducer

import (
	"fmt"
	"reflect"

	"github.com/aretw0/reducto/pkg/domain"
)

// Field is an accessor pair for one field of a composite state S.
// Set must return a copy of the state with the field replaced and leave its argument untouched.
type Field[S, F any] struct {
	Name string
	Get  func(state S) F
	Set  func(state S, value F) S
}

// Validate reports whether the accessor pair denotes a field.
func (f Field[S, F]) Validate() error {
	if f.Name == "" || f.Get == nil || f.Set == nil {
		return fmt.Errorf("field %q: %w", f.Name, domain.ErrNotAField)
	}
	return nil
}

// StructField builds a Field for the exported struct field called name.
// S must be a struct type and the field must be declared directly on S with type exactly F.
func StructField[S, F any](name string) (Field[S, F], error) {
	st := reflect.TypeFor[S]()
	ft := reflect.TypeFor[F]()

	if st.Kind() != reflect.Struct {
		return Field[S, F]{}, fmt.Errorf("field %q of %s: state is not a struct: %w", name, st, domain.ErrNotAField)
	}
	sf, ok := st.FieldByName(name)
	if !ok || len(sf.Index) != 1 {
		return Field[S, F]{}, fmt.Errorf("field %q of %s: no such field: %w", name, st, domain.ErrNotAField)
	}
	if !sf.IsExported() {
		return Field[S, F]{}, fmt.Errorf("field %q of %s: unexported: %w", name, st, domain.ErrNotAField)
	}
	if sf.Type != ft {
		return Field[S, F]{}, fmt.Errorf("field %q of %s: has type %s, not %s: %w", name, st, sf.Type, ft, domain.ErrNotAField)
	}

	idx := sf.Index[0]
	return Field[S, F]{
		Name: name,
		Get: func(state S) F {
			var out F
			reflect.ValueOf(&out).Elem().Set(reflect.ValueOf(&state).Elem().Field(idx))
			return out
		},
		Set: func(state S, value F) S {
			v := reflect.ValueOf(&state).Elem()
			v.Field(idx).Set(reflect.ValueOf(&value).Elem())
			return state
		},
	}, nil
}

// MustStructField is like StructField but panics on error.
func MustStructField[S, F any](name string) Field[S, F] {
	f, err := StructField[S, F](name)
	if err != nil {
		panic(err)
	}
	return f
}
