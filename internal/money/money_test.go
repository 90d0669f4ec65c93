package money

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "150", want: 15000},
		{in: "150.5", want: 15050},
		{in: "150.50", want: 15050},
		{in: "0.01", want: 1},
		{in: "0", want: 0},
		{in: "-3.25", want: -325},
		{in: "10000.00", want: 1000000},
		{in: "1.005", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1,50", wantErr: true},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) err=%v", c.in, err)
			continue
		}
		if got.Minor() != c.want {
			t.Errorf("Parse(%q)=%d want=%d", c.in, got.Minor(), c.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{FromMinor(15050), "150.50"},
		{FromMinor(1), "0.01"},
		{FromMinor(0), "0.00"},
		{FromMinor(-325), "-3.25"},
		{FromMinor(1000000), "10000.00"},
	}

	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String(%d)=%q want=%q", c.in.Minor(), got, c.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := MustParse("100.00")
	b := MustParse("40.00")

	if got := a.Sub(b); got != MustParse("60.00") {
		t.Errorf("Sub=%s want=60.00", got)
	}
	if got := a.Add(b); got != MustParse("140.00") {
		t.Errorf("Add=%s want=140.00", got)
	}
	if got := b.Neg(); got != MustParse("-40.00") {
		t.Errorf("Neg=%s want=-40.00", got)
	}
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Errorf("Cmp ordering broken")
	}
	if !MustParse("0").IsZero() || !b.IsPositive() || !b.Neg().IsNegative() {
		t.Errorf("sign predicates broken")
	}
}

// TestNoDriftAcrossRepeatedOps guards the bug class the float64-based
// implementation had: rounding through binary floating point on every
// save slowly corrupts a balance like 0.10.
func TestNoDriftAcrossRepeatedOps(t *testing.T) {
	step := MustParse("0.10")
	balance := MustParse("0")

	for range 10000 {
		balance = balance.Add(step)
	}
	if balance != MustParse("1000.00") {
		t.Fatalf("after 10000 adds of 0.10: %s want 1000.00", balance)
	}

	for range 10000 {
		balance = balance.Sub(step)
	}
	if !balance.IsZero() {
		t.Fatalf("after matching subs: %s want 0.00", balance)
	}
}
