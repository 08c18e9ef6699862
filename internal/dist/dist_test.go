package dist

import "testing"

func TestStringIdentity(t *testing.T) {
	cases := []string{"Abbey Road", "x", "The Wall", "1999"}
	for _, s := range cases {
		if d := String(s, s); d != 0 {
			t.Errorf("String(%q, %q) = %v, want 0", s, s, d)
		}
	}
}

func TestStringNonNegative(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"", ""},
		{"The Beatles", "Rolling Stones"},
	}
	for _, p := range pairs {
		if d := String(p[0], p[1]); d < 0 {
			t.Errorf("String(%q, %q) = %v, want >= 0", p[0], p[1], d)
		}
	}
}

func TestStopwordRotation(t *testing.T) {
	if d := String("The Beatles", "beatles, the"); d != 0 {
		t.Errorf("String(%q, %q) = %v, want 0", "The Beatles", "beatles, the", d)
	}
}

func TestParentheticalDiscount(t *testing.T) {
	withParens := String("Paranoid Android", "Paranoid Android (Remastered)")
	withoutParens := String("Paranoid Android", "Paranoid Android Remastered")

	if !(withParens < withoutParens*0.5) {
		t.Errorf("parenthetical discount not applied: with=%v without*0.5=%v", withParens, withoutParens*0.5)
	}
	if withParens >= 1 || withoutParens >= 1 {
		t.Errorf("expected both distances < 1, got with=%v without=%v", withParens, withoutParens)
	}
}

func TestFeaturingNoise(t *testing.T) {
	d := String("Bound 2", "Bound 2 feat. Charlie Wilson")
	if d <= 0 {
		t.Errorf("expected some residual distance, got %v", d)
	}
	if d >= 1 {
		t.Errorf("expected distance < 1, got %v", d)
	}
}

func TestEmptyStrings(t *testing.T) {
	if d := String("", ""); d != 0 {
		t.Errorf("String(\"\", \"\") = %v, want 0", d)
	}
}
