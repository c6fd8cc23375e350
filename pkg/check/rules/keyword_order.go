package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/97gamjak/devops/pkg/check"
)

const defaultKeywordSequence = "static inline constexpr"

// KW01KeywordOrder flags lines that use a set of specifiers in any
// order other than the configured one. A line missing any of the
// keywords is fine; only lines containing all of them must keep the
// sequence adjacent and in order.
var KW01KeywordOrder = check.RuleDef{
	ID:          "KW01",
	Name:        "keyword_order",
	Group:       "style",
	Description: `Use "static inline constexpr" only in this given order.`,
	ConfigKeys:  []string{"sequence"},
}

func init() {
	KW01KeywordOrder.Check = checkKeywordOrder
	check.Register(KW01KeywordOrder)
}

func checkKeywordOrder(t check.Target, content string, opts check.Options) check.Outcome {
	sequence := check.GetStringOption(opts, "sequence", defaultKeywordSequence)
	keys := strings.Fields(sequence)
	if len(keys) == 0 {
		return check.Pass(KW01KeywordOrder.ID, t)
	}

	for i, line := range strings.Split(content, "\n") {
		if sequenceOrdered(keys, line) {
			continue
		}
		return check.Violation(KW01KeywordOrder.ID, t,
			fmt.Sprintf("keyword order: want %q (line %d)", sequence, i+1))
	}
	return check.Pass(KW01KeywordOrder.ID, t)
}

// sequenceOrdered reports whether a line respects the keyword
// sequence. Lines that do not contain every keyword as a standalone
// token pass; lines that do must contain the keywords as one
// adjacent run in the given order.
func sequenceOrdered(keys []string, line string) bool {
	tokens := strings.Fields(line)
	for _, k := range keys {
		if !slices.Contains(tokens, k) {
			return true
		}
	}
	for i := 0; i+len(keys) <= len(tokens); i++ {
		if slices.Equal(tokens[i:i+len(keys)], keys) {
			return true
		}
	}
	return false
}
