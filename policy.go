package xrow

import "strconv"

// Kind identifies a scalar type served by the accessors.
type Kind uint8

const (
	KindBool Kind = iota
	KindByte
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindTime
	KindString
	KindBytes
	KindUUID
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindByte:    "byte",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindTime:    "time",
	KindString:  "string",
	KindBytes:   "bytes",
	KindUUID:    "uuid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// NullPolicy says what a non-nullable accessor does with a NULL column.
type NullPolicy uint8

const (
	// PropagateNull calls the cursor's typed reader anyway and returns its
	// failure, which matches ErrNullValue.
	PropagateNull NullPolicy = iota
	// DegradeToAbsent checks IsNull first and returns the absent value
	// (invalid sql.Null[T] or nil slice) without calling the typed reader.
	DegradeToAbsent
)

func (p NullPolicy) String() string {
	switch p {
	case PropagateNull:
		return "propagate"
	case DegradeToAbsent:
		return "degrade"
	}
	return "policy(" + strconv.Itoa(int(p)) + ")"
}

// nullPolicies holds the null handling of every non-nullable accessor. Text and
// binary degrade; everything else surfaces the reader's null error.
var nullPolicies = map[Kind]NullPolicy{
	KindBool:    PropagateNull,
	KindByte:    PropagateNull,
	KindInt16:   PropagateNull,
	KindInt32:   PropagateNull,
	KindInt64:   PropagateNull,
	KindFloat32: PropagateNull,
	KindFloat64: PropagateNull,
	KindDecimal: PropagateNull,
	KindTime:    PropagateNull,
	KindUUID:    PropagateNull,
	KindString:  DegradeToAbsent,
	KindBytes:   DegradeToAbsent,
}

// PolicyFor returns the null policy applied by the non-nullable accessor for k.
// Unknown kinds propagate.
func PolicyFor(k Kind) NullPolicy {
	if p, ok := nullPolicies[k]; ok {
		return p
	}
	return PropagateNull
}
