// Package exporter writes the pipeline's aggregate tables to disk for the
// reporting collaborator.
//
// CSVWriter: core CSV writing with headers and UTF-8 BOM for Excel
// compatibility.
//
// ReportExporter: renders the pipeline Result into the well-known report
// files — group aggregates, per-complaint emotion scores, negative word
// frequencies, monthly volumes, and a JSON run summary.
package exporter
