package testkit

import "testing"

func TestMustPanic_ReturnsValue(t *testing.T) {
	v := MustPanic(t, func() { panic("boom") })
	if v != "boom" {
		t.Fatalf("recovered %v, want boom", v)
	}
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "status=ok engine=script", "engine=script")
}

func TestMustEqualSlice(t *testing.T) {
	MustEqualSlice(t, "offsets", []int32{0, 5, 9}, []int32{0, 5, 9})
	MustEqualSlice(t, "empty", []uint16{}, nil)
}
