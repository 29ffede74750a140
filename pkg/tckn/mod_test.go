package tckn

import "testing"

func TestMod10_Floored(t *testing.T) {
	cases := map[int]int{
		-9:  1,
		-10: 0,
		-29: 1,
		-1:  9,
		0:   0,
		155: 5,
		9:   9,
	}
	for in, want := range cases {
		if got := mod10(in); got != want {
			t.Errorf("mod10(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCheckDigits_NegativeIntermediate(t *testing.T) {
	// odd sum 0, even sum 9: 0*7 - 9 = -9, which must map to 1
	d := [Length]int{0, 9, 0, 0, 0, 0, 0, 0, 0}
	d9, d10 := checkDigits(&d)
	if d9 != 1 {
		t.Fatalf("d9 = %d, want 1", d9)
	}
	if d10 != 0 {
		t.Fatalf("d10 = %d, want 0", d10)
	}
}
