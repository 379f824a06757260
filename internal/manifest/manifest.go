// Package manifest reads the crate manifest format Crate Discovery
// needs: a simple key/value text format (Cargo.toml-shaped) from
// which only package.name, and — per SPEC_FULL's supplemented
// features — [workspace] members and dependency package aliases, are
// ever extracted. There is no general TOML library here on purpose;
// the format this tool cares about is a handful of `key = "value"`
// lines under `[section]` headers, and the retrieval pack's
// ben-ranford-lopper Rust adapter parses exactly that shape the same
// hand-rolled way.
package manifest

import (
	"os"
	"strings"
)

// Manifest is the subset of a Cargo.toml this tool understands.
type Manifest struct {
	HasPackage       bool
	Name             string
	WorkspaceMembers []string
	// DependencyAliases maps a declared dependency's local name to the
	// `package = "..."` it renames, when present.
	DependencyAliases map[string]string
}

// Parse reads and parses a manifest file from disk.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(string(data)), nil
}

// ParseContent parses manifest text already read into memory.
func ParseContent(content string) *Manifest {
	m := &Manifest{DependencyAliases: map[string]string{}}

	section := ""
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(stripTomlComment(raw))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}

		key, value, ok := parseTomlAssignment(line)
		if !ok {
			continue
		}

		switch {
		case section == "package" && key == "name":
			m.HasPackage = true
			m.Name = unquote(value)
		case section == "workspace" && key == "members":
			m.WorkspaceMembers = extractQuotedStrings(value)
		case strings.HasPrefix(section, "dependencies"):
			// Inline-table dependency: foo = { package = "bar", ... }
			if idx := strings.Index(value, "package"); idx >= 0 {
				if name := extractAssignedString(value[idx:], "package"); name != "" {
					m.DependencyAliases[key] = name
				}
			}
		}
	}
	return m
}

// stripTomlComment cuts a line at the first '#' that sits outside a
// quoted string.
func stripTomlComment(line string) string {
	inQuote := false
	var quoteChar byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuote:
			if c == quoteChar {
				inQuote = false
			}
		case c == '"' || c == '\'':
			inQuote = true
			quoteChar = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

// parseTomlAssignment splits "key = value" on the first '=',
// rejecting lines with no '=' or an empty key.
func parseTomlAssignment(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// extractQuotedStrings returns every quoted string literal found in
// value, in order, with duplicates removed.
func extractQuotedStrings(value string) []string {
	var out []string
	seen := map[string]bool{}
	var quoteChar byte
	inQuote := false
	start := 0
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case inQuote:
			if c == quoteChar {
				s := value[start:i]
				if !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
				inQuote = false
			}
		case c == '"' || c == '\'':
			inQuote = true
			quoteChar = c
			start = i + 1
		}
	}
	return out
}

// extractAssignedString finds `key = "value"` inside an inline table
// fragment and returns value, or "" if absent.
func extractAssignedString(fragment, key string) string {
	idx := strings.Index(fragment, key)
	if idx < 0 {
		return ""
	}
	rest := fragment[idx+len(key):]
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return ""
	}
	rest = strings.TrimSpace(rest[eq+1:])
	strs := extractQuotedStrings(rest)
	if len(strs) == 0 {
		return ""
	}
	return strs[0]
}

func unquote(value string) string {
	strs := extractQuotedStrings(value)
	if len(strs) == 0 {
		return strings.Trim(value, `"'`)
	}
	return strs[0]
}
