package fits

import "testing"

func TestParseTForm(t *testing.T) {
	cases := []struct {
		raw   string
		count int
		code  byte
	}{
		{"1J", 1, 'J'},
		{"10A", 10, 'A'},
		{"1E", 1, 'E'},
		{"16X", 16, 'X'},
	}
	for _, c := range cases {
		tf, err := ParseTForm(c.raw)
		if err != nil {
			t.Fatalf("ParseTForm(%q): %v", c.raw, err)
		}
		if tf.Count != c.count || tf.Code != c.code {
			t.Errorf("ParseTForm(%q) = %+v, want count=%d code=%c", c.raw, tf, c.count, c.code)
		}
	}
}

func TestParseTFormMalformed(t *testing.T) {
	for _, raw := range []string{"", "J", "5"} {
		if _, err := ParseTForm(raw); err == nil {
			t.Errorf("ParseTForm(%q) should have failed", raw)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		tf   TForm
		want int
	}{
		{TForm{1, 'J'}, 4},
		{TForm{10, 'A'}, 10},
		{TForm{1, 'D'}, 8},
		{TForm{16, 'X'}, 2},
		{TForm{9, 'X'}, 2},
		{TForm{3, 'E'}, 12},
	}
	for _, c := range cases {
		got, err := c.tf.Width()
		if err != nil {
			t.Fatalf("Width(%+v): %v", c.tf, err)
		}
		if got != c.want {
			t.Errorf("Width(%+v) = %d, want %d", c.tf, got, c.want)
		}
	}
}

func TestWidthUnknownCode(t *testing.T) {
	if _, err := (TForm{1, 'Z'}).Width(); err == nil {
		t.Errorf("Width with unknown code should fail")
	}
}
