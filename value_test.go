package atlasshift

import "testing"

func TestValue_SetKeepsPosition(t *testing.T) {
	v := Object(Member{Key: "a", Value: Number("1")}, Member{Key: "b", Value: Number("2")})
	v.Set("a", Number("3"))
	v.Set("c", Null())
	if v.Len() != 3 || v.Members[0].Key != "a" || v.Members[0].Value.Number != "3" || v.Members[2].Key != "c" {
		t.Fatalf("unexpected members: %+v", v.Members)
	}
	Number("1").Set("x", Null())
	if _, ok := Array().Get("x"); ok {
		t.Fatalf("Get on array must fail")
	}
	var nilV *Value
	if nilV.Len() != 0 {
		t.Fatalf("nil Len must be 0")
	}
}

func TestValueKind_String(t *testing.T) {
	for k, want := range map[ValueKind]string{
		NullValue: "null", BoolValue: "boolean", NumberValue: "number",
		StringValue: "string", ArrayValue: "array", ObjectValue: "object",
	} {
		if k.String() != want {
			t.Fatalf("%d: got %s want %s", k, k.String(), want)
		}
	}
}
