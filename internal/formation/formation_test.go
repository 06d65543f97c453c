package formation

import (
	"reflect"
	"testing"
)

func TestPositionsKnownFormations(t *testing.T) {
	cases := map[string][]string{
		"4-4-2":   {"GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"},
		"4-2-3-1": {"GK", "LB", "CB", "CB", "RB", "CDM", "CDM", "LM", "CAM", "RM", "ST"},
		"3-5-2":   {"GK", "CB", "CB", "CB", "LWB", "CM", "CM", "CM", "RWB", "ST", "ST"},
	}
	for code, want := range cases {
		got := Positions(code)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Positions(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestPositionsAlwaysElevenStartingGK(t *testing.T) {
	for _, code := range []string{"4-4-2", "4-3-3", "3-5-2", "3-4-3", "5-3-2", "4-2-3-1"} {
		got := Positions(code)
		if len(got) != LineupSize {
			t.Fatalf("Positions(%q) has %d labels", code, len(got))
		}
		if got[0] != "GK" {
			t.Fatalf("Positions(%q)[0] = %q, want GK", code, got[0])
		}
	}
}

func TestPositionsUnknownFallsBack(t *testing.T) {
	got := Positions("2-3-5")
	if got[0] != "P1" || got[10] != "P11" {
		t.Fatalf("unknown formation fallback = %v", got)
	}
	if Known("2-3-5") {
		t.Fatal("2-3-5 should not be a known formation")
	}
}

func TestRows(t *testing.T) {
	cases := map[string][]int{
		"4-2-3-1": {1, 4, 2, 3, 1},
		"4-4-2":   {1, 4, 4, 2},
		"3-5-2":   {1, 3, 5, 2},
	}
	for code, want := range cases {
		if got := Rows(code); !reflect.DeepEqual(got, want) {
			t.Errorf("Rows(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestRowsDegenerate(t *testing.T) {
	for _, code := range []string{"", "abc", "4-4-3", "4--2"} {
		if got := Rows(code); !reflect.DeepEqual(got, []int{LineupSize}) {
			t.Errorf("Rows(%q) = %v, want single row", code, got)
		}
	}
}
