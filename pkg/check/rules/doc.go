// Package rules holds the built-in hygiene rules. Importing the
// package registers every rule with the check registry:
//
//	import _ "github.com/97gamjak/devops/pkg/check/rules"
package rules
