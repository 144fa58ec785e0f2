package exam

import "testing"

func TestClassifyFamily(t *testing.T) {
	tests := []struct {
		input    string
		expected Family
	}{
		{"SAT_MATH", FamilySAT},
		{"sat reading", FamilySAT},
		{"ACT_SCIENCE_DIAGNOSTIC", FamilyACT},
		{"AP_BIOLOGY", FamilyAP},
		{"daily_quiz", FamilyQuiz},
		{"something else", FamilyGeneral},
		// "adaptive" contains "ap", so the AP rule wins. First match is
		// deliberate, not an accident.
		{"adaptive_math", FamilyAP},
		{"ADAPTIVE_SAT", FamilySAT},
	}
	for _, tt := range tests {
		if got := ClassifyFamily(tt.input); got != tt.expected {
			t.Errorf("ClassifyFamily(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"SAT_MATH", CategorySATMath},
		{"SAT_ALGEBRA_PRACTICE", CategorySATMath},
		{"SAT_GEOMETRY", CategorySATMath},
		{"SAT_RW_MOCK", CategorySATRW},
		{"SAT_DIAGNOSTIC", CategorySATRW},
		{"sat_reading", CategorySATRW},
		{"SAT_FULL", CategorySATMath}, // family catch-all
		{"ACT_MATH_MOCK", CategoryACTMath},
		{"ACT_ENGLISH", CategoryACTEnglish},
		{"ACT_READING_MOCK", CategoryACTEnglish},
		{"ACT_SCIENCE", CategoryACTScience},
		{"ACT_DIAGNOSTIC", CategoryACTScience},
		{"ACT", CategoryACTMath},
		{"AP_BIOLOGY", CategoryAPBiology},
		{"AP_CHEMISTRY", CategoryAPChem},
		{"AP_PHYSICS_1", CategoryAPPhysics},
		{"AP_PSYCHOLOGY", CategoryAPPsych},
		{"AP_WORLD_HISTORY", CategoryAPWorld},
		{"AP_USH_MOCK", CategoryAPUSH},
		{"AP_US_HISTORY", CategoryAPUSH},
		{"AP_CALC_AB", CategoryAPCalc},
		{"AP_LITERATURE", CategoryAPLit},
		{"AP_SOMETHING", CategoryAPBiology}, // family catch-all
		{"daily_quiz", CategoryDefault},
		{"", CategoryDefault},
		{"totally unknown type", CategoryDefault},
	}
	for _, tt := range tests {
		if got := ClassifyCategory(tt.input); got != tt.expected {
			t.Errorf("ClassifyCategory(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Classification must be deterministic across repeated calls.
func TestClassifyCategoryIdempotent(t *testing.T) {
	inputs := []string{"SAT_MATH", "ACT_SCIENCE_DIAGNOSTIC", "gibberish", "AP_WORLD"}
	for _, in := range inputs {
		first := ClassifyCategory(in)
		for i := 0; i < 10; i++ {
			if got := ClassifyCategory(in); got != first {
				t.Fatalf("ClassifyCategory(%q) unstable: %q then %q", in, first, got)
			}
		}
	}
}
