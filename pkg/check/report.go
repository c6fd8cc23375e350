package check

// Report is the complete result of one engine run. Outcomes appear
// in target order, so two runs over the same tree produce identical
// reports apart from the run ID.
type Report struct {
	RunID string `json:"run_id"`
	// Files counts the targets that were actually checked.
	Files int `json:"files"`
	// Skipped lists targets excluded before checking, e.g. files
	// invoking a known-buggy macro.
	Skipped  []string  `json:"skipped,omitempty"`
	Outcomes []Outcome `json:"outcomes"`
}

// Failed reports whether the run produced at least one violation.
func (r *Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusViolation {
			return true
		}
	}
	return false
}

// Violations returns the violating outcomes in report order.
func (r *Report) Violations() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusViolation {
			out = append(out, o)
		}
	}
	return out
}

// ViolationCount returns the number of violating outcomes.
func (r *Report) ViolationCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusViolation {
			n++
		}
	}
	return n
}

// FilesWithViolations counts distinct files with at least one
// violation.
func (r *Report) FilesWithViolations() int {
	seen := make(map[string]bool)
	for _, o := range r.Outcomes {
		if o.Status == StatusViolation {
			seen[o.Path] = true
		}
	}
	return len(seen)
}

// FilesPassed counts checked files without any violation.
func (r *Report) FilesPassed() int {
	return r.Files - r.FilesWithViolations()
}

// ByFile groups outcomes by path, preserving the order in which
// paths first appear in the report.
func (r *Report) ByFile() ([]string, map[string][]Outcome) {
	var paths []string
	grouped := make(map[string][]Outcome)
	for _, o := range r.Outcomes {
		if _, ok := grouped[o.Path]; !ok {
			paths = append(paths, o.Path)
		}
		grouped[o.Path] = append(grouped[o.Path], o)
	}
	return paths, grouped
}
