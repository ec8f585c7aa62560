// Package units implements unit canonicalization and conversion for the
// measurement pipeline.
//
// The materials database records unit labels as free text, so the same
// physical unit appears in several spellings ("g/cm^3", "g/cm3", "%",
// ""). Canonicalize maps those raw labels to stable canonical keys via
// a per-variable rule table; ConversionTable holds the scalar factors
// between canonical keys of the same unit family.
//
// The table is sparse: an absent (from, to) pair is an explicit
// conversion error, never a zero factor, and cross-family pairs are
// always absent. Both directions of every in-family pair are registered
// at build time, so lookup never inverts a factor implicitly.
package units
