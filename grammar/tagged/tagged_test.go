package tagged

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/arc/comb"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"number:42", Value{Type: "number", Value: 42}},
		{"diceroll:2d8", Value{Type: "diceroll", Value: Dice{Count: 2, Sides: 8}}},
		{"string:hello", Value{Type: "string", Value: "hello"}},
		{"diceroll:10d20", Value{Type: "diceroll", Value: Dice{Count: 10, Sides: 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConsumesInput(t *testing.T) {
	for _, input := range []string{"number:42", "diceroll:2d8"} {
		s := comb.Run(Parser, input)
		if s.Failed {
			t.Fatalf("%s: unexpected failure: %v", input, s.Err)
		}
		if s.Cursor != len(input) {
			t.Errorf("%s: Cursor = %d, want %d", input, s.Cursor, len(input))
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		pos     int
		message string
	}{
		{"colour:red", 7, `unknown type "colour"`},
		{"number:abc", 7, "number payload: could not match digits"},
		{"diceroll:2x8", 10, `diceroll payload: tried to match "d"`},
		{"number", 6, `tried to match ":"`},
		{"number:", 7, "unexpected end of input"},
		{":42", 0, "could not match letters"},
		{"number:99999999999999999999", 27, "number payload: integer 99999999999999999999 is out of range"},
		{"diceroll:99999999999999999999d8", 29, "diceroll payload: integer 99999999999999999999 is out of range"},
		{"diceroll:2d99999999999999999999", 31, "diceroll payload: integer 99999999999999999999 is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *comb.Error
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *comb.Error", err)
			}
			if perr.Position != tt.pos {
				t.Errorf("Position = %d, want %d", perr.Position, tt.pos)
			}
			if !strings.Contains(perr.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", perr.Message, tt.message)
			}
		})
	}
}

func TestTypes(t *testing.T) {
	if diff := cmp.Diff([]string{"diceroll", "number", "string"}, Types()); diff != "" {
		t.Errorf("Types mismatch (-want +got):\n%s", diff)
	}
	for _, typ := range Types() {
		if _, ok := payloads[typ]; !ok {
			t.Errorf("type %q has no payload grammar", typ)
		}
	}
}
