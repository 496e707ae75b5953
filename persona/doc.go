// Package persona runs the persona-driven analysis pipeline: extract
// sections from a set of documents, rank them against a persona/task
// query, and summarize the most relevant ones into a single report.
//
// The run configuration is a JSON document naming the persona role, the
// job to be done, and the input documents; it is validated against a
// JSON schema before any extraction starts. Documents are processed by
// a bounded worker pool with one document per worker and a single join
// barrier; results are aggregated in submission order once all workers
// finish, so output is deterministic. The report is written atomically.
package persona
