// Package ingestion provides pipeline orchestration for turning content
// descriptors into saved sources with attached insights.
//
// A run stages extraction outcomes (one item, or a whole crawled site),
// walks the staging queue strictly sequentially to persist source records,
// and then fans out one transformation task per (saved source, spec) pair
// over a worker pool, joining before the run reports completion.
//
// Failure isolation is the organizing principle: extraction, persistence,
// and transformation errors are confined to their item or task and reported
// in the Result, never aborting the batch. Only configuration errors fail
// a run outright.
package ingestion
