package action

import "testing"

func TestIdentifierRoundTrip(t *testing.T) {
	for id := Identifier(0); id < 255; id++ {
		a, ok := FromIdentifier(id)
		if !ok {
			continue
		}
		gotID, ok := a.Identifier()
		if !ok {
			t.Fatalf("id %d: action %v has no reverse identifier", id, a)
		}
		if gotID != id {
			t.Errorf("id %d -> action %v -> id %d, not round-tripping", id, a, gotID)
		}
	}
}

func TestCanonicalTableEntries(t *testing.T) {
	want := map[Identifier]Action{
		52: NewFold(),
		53: NewCall(),
		70: NewAllIn(),
		59: NewBet(134),
	}
	for id, expect := range want {
		got, ok := FromIdentifier(id)
		if !ok || got != expect {
			t.Errorf("FromIdentifier(%d) = %v, %v; want %v, true", id, got, ok, expect)
		}
	}
}

func TestActionEquality(t *testing.T) {
	if NewBet(150) != NewBet(150) {
		t.Error("equal bets should compare equal")
	}
	if NewBet(150) == NewBet(200) {
		t.Error("distinct bets should not compare equal")
	}
}

func TestMultiplier(t *testing.T) {
	if m := NewBet(134).Multiplier(); m != 1.34 {
		t.Errorf("Multiplier() = %v, want 1.34", m)
	}
}
