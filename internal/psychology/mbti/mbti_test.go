package mbti

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProfileINTJStack(t *testing.T) {
	p, ok := Profile(INTJ)
	if !ok {
		t.Fatalf("INTJ missing from table")
	}
	want := []Function{"Ni", "Te", "Fi", "Se"}
	if diff := cmp.Diff(want, p.FunctionStack()); diff != "" {
		t.Fatalf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileCoversAllTypes(t *testing.T) {
	for _, typ := range AllTypes {
		p, ok := Profile(typ)
		if !ok {
			t.Fatalf("%s missing", typ)
		}
		if len(p.FunctionStack()) != 4 {
			t.Fatalf("%s stack has %d entries", typ, len(p.FunctionStack()))
		}
	}
	if len(Types()) != 16 {
		t.Fatalf("expected 16 types, got %d", len(Types()))
	}
}

func TestProfileUnknown(t *testing.T) {
	if p, ok := Profile(Type("XXXX")); ok || p != nil {
		t.Fatalf("expected nil for unknown code")
	}
	if _, ok := ParseType("abcd"); ok {
		t.Fatalf("expected parse failure")
	}
	if got, ok := ParseType(" enfp "); !ok || got != ENFP {
		t.Fatalf("ParseType lowercase: got=%q ok=%v", got, ok)
	}
}

func TestCompatibilitySymmetric(t *testing.T) {
	for _, a := range AllTypes {
		for _, b := range AllTypes {
			ab := AssessCompatibility(a, b)
			ba := AssessCompatibility(b, a)
			if ab.Compatible != ba.Compatible || ab.CompatibilityScore != ba.CompatibilityScore {
				t.Fatalf("asymmetric result for %s/%s", a, b)
			}
			if ab.Compatible && ab.CompatibilityScore != 75 || !ab.Compatible && ab.CompatibilityScore != 50 {
				t.Fatalf("unexpected score %d for %s/%s", ab.CompatibilityScore, a, b)
			}
		}
	}
}

func TestCompatibilityKnownPairs(t *testing.T) {
	// ENTJ aux Ni == INTJ dom Ni
	if !AssessCompatibility(INTJ, ENTJ).Compatible {
		t.Fatalf("INTJ/ENTJ should be compatible")
	}
	// INTJ(Ni,Te) vs ENFP(Ne,Fi): no overlap
	if AssessCompatibility(INTJ, ENFP).Compatible {
		t.Fatalf("INTJ/ENFP should not be compatible")
	}
	unknown := AssessCompatibility(INTJ, Type("QQQQ"))
	if unknown.Compatible || unknown.Reason != "Unknown types" {
		t.Fatalf("unexpected unknown result: %+v", unknown)
	}
}

func TestShadowFunctions(t *testing.T) {
	p, _ := Profile(INTJ)
	want := []Function{"Ne", "Ti", "Fe", "Si"}
	if diff := cmp.Diff(want, ShadowFunctions(*p)); diff != "" {
		t.Fatalf("shadow mismatch (-want +got):\n%s", diff)
	}
}
