// Package exporter writes the final dataset table to spreadsheet
// sinks: an Excel workbook for the export flag, CSV as a lighter
// alternative. File names are derived deterministically from the chosen
// variable names; existing files are overwritten without guarding.
package exporter
