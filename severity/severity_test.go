package severity

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"none", None},
		{"fatal", Fatal},
		{"critical", Critical},
		{"error", Error},
		{"warning", Warning},
		{"notice", Notice},
		{"information", Information},
		{"debug", Debug},
		{"trace", Trace},
		{"WARNING", Warning},
		{"Warning", Warning},
		{"TRACE", Trace},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"bogus", "", "warn", "info", "fatal "} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidLevel", input, err)
			}
		})
	}
}

func TestOrdering(t *testing.T) {
	if !(Fatal < Critical && Critical < Error && Error < Warning &&
		Warning < Notice && Notice < Information && Information < Debug && Debug < Trace) {
		t.Fatal("severity ranks are not in fatal..trace order")
	}
	if None != 0 {
		t.Errorf("None = %d, want 0", None)
	}
	if Trace != 8 {
		t.Errorf("Trace = %d, want 8", Trace)
	}
}

func TestString(t *testing.T) {
	if got := Information.String(); got != "information" {
		t.Errorf("Information.String() = %q, want %q", got, "information")
	}
	if got := Level(42).String(); got != "level(42)" {
		t.Errorf("Level(42).String() = %q, want %q", got, "level(42)")
	}
}

func TestValid(t *testing.T) {
	if !None.Valid() || !Trace.Valid() {
		t.Error("scale boundaries should be valid")
	}
	if Level(-1).Valid() || Level(9).Valid() {
		t.Error("out-of-range levels should be invalid")
	}
}
