package utils

import "testing"

func TestFormatEUR(t *testing.T) {
	cases := map[int64]string{
		0:       "€0",
		199:     "€199",
		2199:    "€2,199",
		6597:    "€6,597",
		1234567: "€1,234,567",
		-2199:   "-€2,199",
	}
	for in, want := range cases {
		if got := FormatEUR(in); got != want {
			t.Errorf("FormatEUR(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseEURToInt(t *testing.T) {
	cases := map[string]int64{
		"€2,199":    2199,
		"2199":      2199,
		"EUR 1 234": 1234,
	}
	for in, want := range cases {
		got, err := ParseEURToInt(in)
		if err != nil {
			t.Errorf("ParseEURToInt(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseEURToInt(%q) = %d, want %d", in, got, want)
		}
	}

	if _, err := ParseEURToInt("€"); err == nil {
		t.Errorf("empty amount parsed without error")
	}
}
