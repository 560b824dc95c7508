// Package dataprocessing implements the complaint cleaning and
// emotion-feature pipeline: reading the tabular export, normalizing records,
// tokenizing narratives, joining tokens against the lexicon tables, and
// aggregating emotion proportions by dispute outcome.
//
// Each stage takes one in-memory table and returns a new one; no stage
// mutates its input. The pipeline is a single-threaded, one-shot batch
// transformation.
package dataprocessing
