// Package http exposes the dataset pipeline over a chi-based JSON API:
// POST /api/v1/dataset runs the pipeline for a criteria document and
// returns the formatted table plus the chart handoff; the registry and
// health endpoints support clients building criteria forms.
package http
