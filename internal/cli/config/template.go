package config

// Template returns the generated devops.toml template. Every key is
// present but commented out, showing its built-in default, so a
// fresh project starts from the documented defaults and uncomments
// what it changes.
func Template() string {
	return `# devops.toml - project configuration for the devops CLI.
# Every key is optional; the commented values show the defaults.

[cpp]
# license_header = ""             # exact expected header text
# license_header_file = ""        # or read it from a file (wins when set)
# license_header_check = true
# style_checks = true             # header guard and keyword order rules
# check_only_staged_files = false
# jobs = 1

[cpp.header_guards]
# enforce_format = false
# path_based = true
# prefix = "__"
# suffix = "_HPP__"
# macro = ""                      # fixed macro when path_based = false
# strip_prefixes = ["include/", "test/"]

[file]
# encoding = "utf-8"
# header_extensions = [".h", ".hpp"]
# source_extensions = [".c", ".cc", ".cpp", ".cxx"]
# changelog = "CHANGELOG.md"

[git]
# tag_prefix = "v"
# empty_tag_list_allowed = false

[logging]
# global_level = "INFO"           # NONE, DEBUG, INFO, WARNING, ERROR, CRITICAL
# utils_level = ""                # empty inherits global_level
# config_level = ""
# cpp_level = ""

[exclude]
# dirs = [".git", "build"]
# buggy_cpp_macros = []           # files invoking these macros are skipped

[rules]
# disabled = []                   # rule IDs, e.g. ["KW01"]

# [rules.options.HG01]            # per-rule option overrides
# enforce_format = true

[license]
# owner = ""                      # substituted for {owner} in the header
# year = ""                       # substituted for {year}
`
}
