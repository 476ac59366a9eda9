package validate

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"ana@example.com", true},
		{"  ana@example.com  ", true},
		{"ana@example", false},
		{"", false},
		{"no-at-sign", false},
	}
	for _, tc := range cases {
		if _, ok := Email(tc.in); ok != tc.ok {
			t.Errorf("Email(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestQ(t *testing.T) {
	if _, ok := Q("camiseta basica"); !ok {
		t.Error("plain search should pass")
	}
	if _, ok := Q("<script>"); ok {
		t.Error("angle brackets should fail")
	}
	if _, ok := Q("   "); ok {
		t.Error("blank should fail")
	}
}

func TestQty(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"999", 50},
	}
	for _, tc := range cases {
		if got := Qty(tc.in); got != tc.want {
			t.Errorf("Qty(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestProductID(t *testing.T) {
	if id, ok := ProductID(" 7 "); !ok || id != 7 {
		t.Errorf("ProductID(\" 7 \") = %d, %v", id, ok)
	}
	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := ProductID(bad); ok {
			t.Errorf("ProductID(%q) should fail", bad)
		}
	}
}

func TestPostal(t *testing.T) {
	if _, ok := Postal("06600"); !ok {
		t.Error("5 digits should pass")
	}
	for _, bad := range []string{"123", "123456", "06A00", ""} {
		if _, ok := Postal(bad); ok {
			t.Errorf("Postal(%q) should fail", bad)
		}
	}
}
