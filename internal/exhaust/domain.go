package exhaust

import "github.com/semlint/caseful/internal/sem"

// domainOf computes the full statically-known value set for a discriminant
// type. The four recognized shapes are boolean, nullable boolean,
// enumeration and nullable enumeration; anything else yields ok == false
// and the checker abstains. The set is built once, atomically, from the
// single given handle.
func domainOf(t sem.TypeHandle) (valueSet, bool) {
	if t == nil {
		return nil, false
	}

	switch {
	case t.IsBoolean():
		return valueSet{
			boolTrue():  {},
			boolFalse(): {},
		}, true

	case t.IsNullableBoolean():
		return valueSet{
			boolTrue():  {},
			boolFalse(): {},
			nullValue(): {},
		}, true

	case t.IsEnum():
		return enumDomain(t, false), true

	case t.IsNullableEnum():
		return enumDomain(t, true), true

	default:
		return nil, false
	}
}

func enumDomain(t sem.TypeHandle, nullable bool) valueSet {
	members := t.EnumMembers()

	dom := make(valueSet, len(members)+1)
	for _, m := range members {
		dom.add(enumValue(m))
	}
	if nullable {
		dom.add(nullValue())
	}

	return dom
}
