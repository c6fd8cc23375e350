package rules

import (
	"github.com/97gamjak/devops/pkg/check"
)

// LH01LicenseHeader flags files whose content does not start with
// the configured license header.
var LH01LicenseHeader = check.RuleDef{
	ID:          "LH01",
	Name:        "license_header",
	Group:       "license",
	Description: "Every file must start with the configured license header.",
	ConfigKeys:  []string{"header", "owner", "year"},
	Requires:    []string{"header"},
}

func init() {
	LH01LicenseHeader.Check = checkLicenseHeader
	check.Register(LH01LicenseHeader)
}

func checkLicenseHeader(t check.Target, content string, opts check.Options) check.Outcome {
	header := check.GetStringOption(opts, "header", "")
	header = check.ExpandHeader(header,
		check.GetStringOption(opts, "owner", ""),
		check.GetStringOption(opts, "year", ""))

	if check.HasLicenseHeader(content, header) {
		return check.Pass(LH01LicenseHeader.ID, t)
	}
	return check.Violation(LH01LicenseHeader.ID, t, "missing or mismatched license header")
}
