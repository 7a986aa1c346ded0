package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 512, 30000); n != 512 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", "Y", "on", "1", " true "} {
		if !StrToBool(s) {
			t.Fatalf("%q should be true", s)
		}
	}
	for _, s := range []string{"false", "f", "no", "0", "off", "", "maybe"} {
		if StrToBool(s) {
			t.Fatalf("%q should be false", s)
		}
	}
}
