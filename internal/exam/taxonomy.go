package exam

import "strings"

// Family is an exam family recognized by the test-type classifier.
type Family string

const (
	FamilySAT      Family = "SAT"
	FamilyACT      Family = "ACT"
	FamilyAP       Family = "AP"
	FamilyQuiz     Family = "QUIZ"
	FamilyAdaptive Family = "ADAPTIVE"
	FamilyGeneral  Family = "GENERAL"
)

// Category is a fallback question-bank bucket. Many test-type strings map
// onto one Category.
type Category string

const (
	CategorySATMath    Category = "SAT_MATH"
	CategorySATRW      Category = "SAT_RW"
	CategoryACTMath    Category = "ACT_MATH"
	CategoryACTEnglish Category = "ACT_ENGLISH"
	CategoryACTScience Category = "ACT_SCIENCE"
	CategoryAPBiology  Category = "AP_BIOLOGY"
	CategoryAPUSH      Category = "AP_USH"
	CategoryAPCalc     Category = "AP_CALC"
	CategoryAPChem     Category = "AP_CHEM"
	CategoryAPPhysics  Category = "AP_PHYSICS"
	CategoryAPPsych    Category = "AP_PSYCH"
	CategoryAPWorld    Category = "AP_WORLD"
	CategoryAPLit      Category = "AP_LIT"
	CategoryDefault    Category = "DEFAULT"
)

// Test types are free-form strings, not a closed enum. Classification is
// case-insensitive substring matching against a fixed vocabulary, evaluated
// top to bottom with first match winning. A string containing markers for
// several families resolves to the earliest family in the list; this mirrors
// the behavior the product has always had, ambiguous as it is.

// familyRules is the ordered family vocabulary. "adaptive" is listed last
// and is shadowed for any string that also matches an earlier family
// ("adaptive" itself contains "ap").
var familyRules = []struct {
	marker string
	family Family
}{
	{"sat", FamilySAT},
	{"act", FamilyACT},
	{"ap", FamilyAP},
	{"quiz", FamilyQuiz},
	{"adaptive", FamilyAdaptive},
}

// ClassifyFamily maps a free-form test-type string to an exam family.
func ClassifyFamily(testType string) Family {
	lower := strings.ToLower(testType)
	for _, r := range familyRules {
		if strings.Contains(lower, r.marker) {
			return r.family
		}
	}
	return FamilyGeneral
}

type categoryRule struct {
	family   string   // required family marker
	subjects []string // any-of subject markers; empty matches the family alone
	category Category
}

// categoryRules maps test types to fallback-bank buckets. Evaluated in
// order; the bare-family rows are catch-alls for their family.
var categoryRules = []categoryRule{
	{"sat", []string{"math", "algebra", "geometry"}, CategorySATMath},
	{"sat", []string{"diagnostic", "rw", "reading", "writing"}, CategorySATRW},
	{"sat", nil, CategorySATMath},

	{"act", []string{"math"}, CategoryACTMath},
	{"act", []string{"english", "writing", "reading"}, CategoryACTEnglish},
	{"act", []string{"science", "diagnostic"}, CategoryACTScience},
	{"act", nil, CategoryACTMath},

	{"ap", []string{"biology"}, CategoryAPBiology},
	{"ap", []string{"chem"}, CategoryAPChem},
	{"ap", []string{"physics"}, CategoryAPPhysics},
	{"ap", []string{"psych"}, CategoryAPPsych},
	{"ap", []string{"world"}, CategoryAPWorld},
	{"ap", []string{"ush", "history"}, CategoryAPUSH},
	{"ap", []string{"calc"}, CategoryAPCalc},
	{"ap", []string{"lit", "english"}, CategoryAPLit},
	{"ap", nil, CategoryAPBiology},
}

// ClassifyCategory maps a free-form test-type string to a fallback-bank
// category. It is total: unmatched strings resolve to CategoryDefault.
func ClassifyCategory(testType string) Category {
	lower := strings.ToLower(testType)
	for _, r := range categoryRules {
		if !strings.Contains(lower, r.family) {
			continue
		}
		if len(r.subjects) == 0 {
			return r.category
		}
		if containsAny(lower, r.subjects...) {
			return r.category
		}
	}
	return CategoryDefault
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
