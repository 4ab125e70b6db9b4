package models

import "time"

// RewriteRecord captures the outcome of fixing a single binding file.
type RewriteRecord struct {
	Path    string
	Changed bool
	FixedAt time.Time
}

// RewriteResult summarizes one pass over a bindings directory.
type RewriteResult struct {
	Dir     string
	Scanned int
	Skipped int
	Changed []string
}

func (r *RewriteResult) Merge(other *RewriteResult) {
	r.Scanned += other.Scanned
	r.Skipped += other.Skipped
	r.Changed = append(r.Changed, other.Changed...)
}
