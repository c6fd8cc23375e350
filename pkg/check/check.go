package check

// FileKind classifies a target by its role in a C/C++ project.
type FileKind int

const (
	// KindSource is an implementation file (.c, .cc, .cpp, .cxx).
	KindSource FileKind = iota
	// KindHeader is a header file (.h, .hpp).
	KindHeader
)

// String returns the lowercase name of the kind.
func (k FileKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Status is the result of applying a single rule to a single target.
type Status int

const (
	// StatusPass means the target satisfies the rule.
	StatusPass Status = iota
	// StatusViolation means the target breaks the rule.
	StatusViolation
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusViolation:
		return "violation"
	default:
		return "unknown"
	}
}

// Target is a single file scheduled for checking.
type Target struct {
	// Path is the absolute or caller-relative path used for IO.
	Path string
	// RelPath is the path relative to the project root, always
	// slash-separated. Rules that derive identifiers from the file
	// location use RelPath, never Path.
	RelPath string
	// Kind classifies the file by extension.
	Kind FileKind
}

// Outcome records the result of one rule applied to one target.
type Outcome struct {
	RuleID string `json:"rule_id"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	// Reason is empty for passing outcomes and holds a short
	// human-readable explanation for violations.
	Reason string `json:"reason,omitempty"`
}

// CheckFunc inspects the decoded content of a target and returns
// exactly one outcome. Implementations must be pure: no IO, no
// shared mutable state, so the engine may call them concurrently.
type CheckFunc func(t Target, content string, opts Options) Outcome

// RuleDef describes a single hygiene rule.
type RuleDef struct {
	// ID is the stable identifier, e.g. "LH01".
	ID string
	// Name is a short snake_case label.
	Name string
	// Group buckets related rules, e.g. "license", "guard".
	Group string
	// Description is a one-line summary shown by the rules command.
	Description string
	// Kinds restricts the rule to targets of the listed kinds.
	// A nil slice applies the rule to every target.
	Kinds []FileKind
	// ConfigKeys lists the option keys the rule understands.
	ConfigKeys []string
	// Requires lists option keys that must resolve to a non-empty
	// value for the rule to run. When any of them is missing the
	// engine deactivates the rule for the whole run.
	Requires []string
	// Check produces the outcome for a single target.
	Check CheckFunc
}

// AppliesTo reports whether the rule should run against the target.
func (r RuleDef) AppliesTo(t Target) bool {
	if len(r.Kinds) == 0 {
		return true
	}
	for _, k := range r.Kinds {
		if k == t.Kind {
			return true
		}
	}
	return false
}

// Pass builds a passing outcome for the rule and target.
func Pass(ruleID string, t Target) Outcome {
	return Outcome{RuleID: ruleID, Path: t.RelPath, Status: StatusPass}
}

// Violation builds a violating outcome with the given reason.
func Violation(ruleID string, t Target, reason string) Outcome {
	return Outcome{RuleID: ruleID, Path: t.RelPath, Status: StatusViolation, Reason: reason}
}
