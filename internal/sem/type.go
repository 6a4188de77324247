package sem

// TypeHandle is an opaque reference to a resolved type. The driver's symbol
// table owns the handle; the core only asks the questions below. A handle is
// expected to answer at most one of the Is* predicates with true.
type TypeHandle interface {
	// Name returns the type's display name, e.g. "Biome" or "Boolean?".
	Name() string

	// IsBoolean reports a plain two-valued boolean type.
	IsBoolean() bool

	// IsNullableBoolean reports a boolean admitting null as a third value.
	IsNullableBoolean() bool

	// IsEnum reports an enumeration type with a finite member-constant set.
	IsEnum() bool

	// IsNullableEnum reports an enumeration admitting null on top of its
	// member constants.
	IsNullableEnum() bool

	// EnumMembers returns the ordered member constants for enum and
	// nullable-enum handles, nil for everything else. The list is the
	// complete set visible to the discriminant's declared type.
	EnumMembers() []EnumMember
}

// EnumMember is one member constant of an enumeration type.
type EnumMember interface {
	// Name is the member's declared identifier within its enumeration.
	Name() string
}
