// Package audit writes the append-only trail of a search run: one CSV
// stream of checksum attempts and one of derived addresses. Rows are
// flushed as they are produced so a killed process still leaves a usable
// partial trail. The trail is the primary deliverable of a run that finds
// no match, so a write failure aborts the run.
package audit
