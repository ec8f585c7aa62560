package units

import "strings"

// labelRule maps raw labels containing a pattern to a canonical unit
// key. Patterns are matched against the normalized label (lowercased,
// whitespace removed) in declaration order, first match wins.
type labelRule struct {
	Contains  string
	Canonical string
}

// variableRules is the fixup rule set for one variable. Fallback, when
// non-empty, is the canonical key assigned to any label no rule matched,
// including the empty label.
type variableRules struct {
	Rules    []labelRule
	Fallback string
}

// fractionRules covers every fraction-type variable: any percent-bearing
// label canonicalizes to percent, everything else to decimal.
var fractionRules = variableRules{
	Rules: []labelRule{
		{Contains: "%", Canonical: Percent},
		{Contains: "percent", Canonical: Percent},
	},
	Fallback: Decimal,
}

// canonicalRules keys per-variable fixups by lowercase variable name.
// Variables not listed here pass their labels through untouched.
// The database carries these labels in several hand-typed spellings;
// the patterns below cover the ones observed so far.
var canonicalRules = map[string]variableRules{
	"porosity":              fractionRules,
	"relative density":      fractionRules,
	"densification strain":  fractionRules,
	"elastic poisson ratio": fractionRules,
	"plastic poisson ratio": fractionRules,

	"density": {
		Rules: []labelRule{
			{Contains: "kg/m", Canonical: KgPerM3},
			{Contains: "kgm", Canonical: KgPerM3},
			{Contains: "g/cm", Canonical: GramPerCm3},
			{Contains: "gcm", Canonical: GramPerCm3},
		},
	},

	"permeability": {
		Rules: []labelRule{
			{Contains: "m^2", Canonical: SquareMeter},
			{Contains: "m2", Canonical: SquareMeter},
		},
	},

	"thermal conductivity": {
		Rules: []labelRule{
			{Contains: "w/m", Canonical: WattPerMeterKelvin},
		},
	},

	"forchheimer coefficient": {
		Rules: []labelRule{
			{Contains: "1/m", Canonical: PerMeter},
			{Contains: "1/ft", Canonical: PerFoot},
		},
	},

	"pores per length": {
		Rules: []labelRule{
			{Contains: "/cm", Canonical: PoresPerCm},
			{Contains: "/in", Canonical: PoresPerInch},
			{Contains: "ppi", Canonical: PoresPerInch},
		},
	},
}

// Canonicalize maps a raw recorded unit label to its canonical key for
// the given variable. Variable names are matched case-insensitively;
// unknown variables and unmatched labels pass through trimmed, so an
// already-canonical label is a no-op. The returned key may still be
// empty or unknown to the conversion table; callers drop such records.
func Canonicalize(variable, rawLabel string) string {
	rules, ok := canonicalRules[strings.ToLower(strings.TrimSpace(variable))]
	if !ok {
		return strings.TrimSpace(rawLabel)
	}

	norm := normalizeLabel(rawLabel)
	for _, r := range rules.Rules {
		if strings.Contains(norm, r.Contains) {
			return r.Canonical
		}
	}
	if rules.Fallback != "" {
		return rules.Fallback
	}
	return strings.TrimSpace(rawLabel)
}

// normalizeLabel lowercases a raw label and strips all whitespace so
// rule patterns match the database's inconsistent spellings.
func normalizeLabel(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), ""))
}
