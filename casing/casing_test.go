package casing

import (
	"testing"
)

func TestClassString(t *testing.T) {
	if Upper.String() != "Upper" {
		t.Errorf("String(Upper) should be 'Upper', is %s", Upper)
	}
	if c := Class(7); c.String() != "Class(7)" {
		t.Errorf("String of unknown class should be 'Class(7)', is %s", c)
	}
}

func TestOf(t *testing.T) {
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A                  => Upper
		'a',    // LATIN SMALL LETTER A                    => Lower
		'Я',    // CYRILLIC CAPITAL LETTER YA              => Upper
		'я',    // CYRILLIC SMALL LETTER YA                => Lower
		'Ω',    // GREEK CAPITAL LETTER OMEGA              => Upper
		'ç',    // LATIN SMALL LETTER C WITH CEDILLA       => Lower
		0x0130, // LATIN CAPITAL LETTER I WITH DOT ABOVE   => Upper
		'ß',    // LATIN SMALL LETTER SHARP S              => Neutral
		0x01C5, // LATIN CAPITAL LETTER D WITH SMALL Z WITH CARON => Neutral
		'川',    // CJK UNIFIED IDEOGRAPH-5DDD              => Neutral
		'ج',    // ARABIC LETTER JEEM                      => Neutral
		'7',    // DIGIT SEVEN                             => Neutral
		'-',    // HYPHEN-MINUS                            => Neutral
	}
	classes := [...]Class{Upper, Lower, Upper, Lower, Upper, Lower, Upper,
		Neutral, Neutral, Neutral, Neutral, Neutral, Neutral}
	for i, r := range chars {
		if c := Of(r); c != classes[i] {
			t.Errorf("expected case class of %#U to be %s, is %s", r, classes[i], c)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		c    Class
		in   rune
		want rune
	}{
		{Upper, 'e', 'E'},
		{Upper, 'E', 'E'},
		{Lower, 'H', 'h'},
		{Lower, 'Д', 'д'},
		{Neutral, 'H', 'H'},
		{Neutral, 'h', 'h'},
		{Upper, '山', '山'},
		{Upper, 'ß', 'ß'},
		{Lower, 0x0130, 'i'},
	}
	for _, tt := range tests {
		if got := Apply(tt.c, tt.in); got != tt.want {
			t.Errorf("Apply(%s, %#U) = %#U, expected %#U", tt.c, tt.in, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	word := []rune("houSe")
	mask := Mask(nil, word)
	expected := []Class{Lower, Lower, Lower, Upper, Lower}
	if len(mask) != len(expected) {
		t.Fatalf("expected mask of length %d, have %d", len(expected), len(mask))
	}
	for i := range expected {
		if mask[i] != expected[i] {
			t.Errorf("mask[%d] should be %s, is %s", i, expected[i], mask[i])
		}
	}
	buf := make([]Class, 0, 16)
	if m := Mask(buf, word); &m[0] != &buf[:1][0] {
		t.Errorf("expected Mask to re-use a buffer of sufficient capacity")
	}
}

func TestApplyMask(t *testing.T) {
	mask := Mask(nil, []rune("houSe"))
	word := []rune("esuoh")
	ApplyMask(mask, word)
	if string(word) != "esuOh" {
		t.Errorf("expected re-cased word to be 'esuOh', is '%s'", string(word))
	}
}
