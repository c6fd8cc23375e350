package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHeader = "// Copyright {year} {owner}\n// All rights reserved.\n"

func TestExpandHeader(t *testing.T) {
	expanded := ExpandHeader(testHeader, "ACME", "2026")
	assert.Equal(t, "// Copyright 2026 ACME\n// All rights reserved.\n", expanded)

	// Placeholders without a value stay verbatim.
	partial := ExpandHeader(testHeader, "ACME", "")
	assert.Equal(t, "// Copyright {year} ACME\n// All rights reserved.\n", partial)

	assert.Equal(t, testHeader, ExpandHeader(testHeader, "", ""))
}

func TestHasLicenseHeader(t *testing.T) {
	header := "// Copyright 2026 ACME\n// All rights reserved.\n"

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"exact prefix", header + "\n#pragma once\n", true},
		{"no blank line after", "// Copyright 2026 ACME\n// All rights reserved.\nint x;\n", true},
		{"crlf content", "// Copyright 2026 ACME\r\n// All rights reserved.\r\nint x;\r\n", true},
		{"missing", "int x;\n", false},
		{"second line differs", "// Copyright 2026 ACME\n// Some rights reserved.\n", false},
		{"empty file", "", false},
		{"leading blank line", "\n" + header, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLicenseHeader(tt.content, header))
		})
	}
}

func TestHasLicenseHeaderEmptyHeader(t *testing.T) {
	assert.False(t, HasLicenseHeader("int x;\n", ""))
	assert.False(t, HasLicenseHeader("int x;\n", "\n\n"))
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", NormalizeNewlines("a\r\nb\rc\n"))
}
