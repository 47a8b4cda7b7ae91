package value

// Kind identifies the concrete kind held by a Value
type Kind int

const (
	// KindAbsent represents no value
	KindAbsent Kind = iota
	KindInt
	KindFloat
	KindFloat32
	KindString
	KindBool
	KindTime
	KindDuration
)

var kindNames = [...]string{
	KindAbsent:   "absent",
	KindInt:      "int",
	KindFloat:    "float64",
	KindFloat32:  "float32",
	KindString:   "string",
	KindBool:     "bool",
	KindTime:     "time.Time",
	KindDuration: "time.Duration",
}

// Name returns the type name of the kind
func (k Kind) Name() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// String returns kind name
func (k Kind) String() string {
	return k.Name()
}
