// Package pipeline turns raw, unit-tagged measurement rows into a
// single unit-consistent, filtered dataset.
//
// A run is one pass: canonicalize units per variable, strict inner join
// on the record identifier, scalar unit conversion to the requested
// targets, then the metal, cell type, and numeric range filters, and
// finally formatting into the output table plus the chart handoff.
//
// Join cardinality equals the intersection of identifier sets across
// all joined row sets, assuming per-set identifier uniqueness. A
// duplicated identifier within a set produces cross-product rows; the
// pipeline neither detects nor repairs that.
package pipeline
