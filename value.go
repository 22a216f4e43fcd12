package atlasshift

// ValueKind identifies the JSON type held by a Value.
type ValueKind int

const (
	NullValue ValueKind = iota
	BoolValue
	NumberValue
	StringValue
	ArrayValue
	ObjectValue
)

func (k ValueKind) String() string {
	switch k {
	case BoolValue:
		return "boolean"
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	default:
		return "null"
	}
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is an ordered JSON tree. Objects keep their members in input order and
// numbers keep their literal text, so a decode/encode round trip only changes
// what the caller changed.
type Value struct {
	Kind    ValueKind
	Bool    bool
	Number  string // literal text for NumberValue
	String  string
	Items   []*Value
	Members []Member
}

// Null, Bool, Number and String construct leaf values.
func Null() *Value { return &Value{Kind: NullValue} }

func Bool(b bool) *Value { return &Value{Kind: BoolValue, Bool: b} }

func Number(lit string) *Value { return &Value{Kind: NumberValue, Number: lit} }

func String(s string) *Value { return &Value{Kind: StringValue, String: s} }

// Array constructs an array value.
func Array(items ...*Value) *Value { return &Value{Kind: ArrayValue, Items: items} }

// Object constructs an object value from members in order.
func Object(members ...Member) *Value { return &Value{Kind: ObjectValue, Members: members} }

// Get returns the member named key of an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != ObjectValue {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the member named key in place, keeping its position, or appends
// it when absent. Set on a non-object is a no-op.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.Kind != ObjectValue {
		return
	}
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// Len returns the number of items or members; 0 for scalars.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case ArrayValue:
		return len(v.Items)
	case ObjectValue:
		return len(v.Members)
	}
	return 0
}
