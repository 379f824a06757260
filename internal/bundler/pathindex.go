package bundler

import "strings"

// PathIndex tracks used module paths and pub-use re-export aliases.
// Insertion is prefix-closed and alias-closed: inserting a path pulls
// in every ancestor path and, transitively, the target of any alias
// registered on an ancestor.
type PathIndex struct {
	paths     map[string]struct{}
	aliases   map[string]string
	aliasHits map[string]struct{}
}

// NewPathIndex returns an empty Path Index.
func NewPathIndex() *PathIndex {
	return &PathIndex{
		paths:     map[string]struct{}{},
		aliases:   map[string]string{},
		aliasHits: map[string]struct{}{},
	}
}

// InsertPath adds p and every non-empty prefix of p. For each prefix
// with a registered alias whose target isn't already present, the
// target is inserted too; the prefix is marked as an alias hit
// regardless of whether that recursion fired. Idempotent.
func (pi *PathIndex) InsertPath(p string) {
	if p == "" {
		return
	}
	segs := strings.Split(p, "/")
	prefix := ""
	for _, s := range segs {
		if s == "" {
			continue
		}
		if prefix == "" {
			prefix = s
		} else {
			prefix = prefix + "/" + s
		}
		pi.paths[prefix] = struct{}{}

		if target, ok := pi.aliases[prefix]; ok {
			pi.aliasHits[prefix] = struct{}{}
			if _, already := pi.paths[target]; !already {
				pi.InsertPath(target)
			}
		}
	}
}

// ContainsPath reports whether p has been inserted (directly or as a
// prefix of some other inserted path).
func (pi *PathIndex) ContainsPath(p string) bool {
	_, ok := pi.paths[p]
	return ok
}

// InsertAlias records alias -> target. A later call for the same
// alias overwrites the earlier target; the last traversal wins (see
// DESIGN.md's note on this open question).
func (pi *PathIndex) InsertAlias(alias, target string) {
	pi.aliases[alias] = target
}

// IsAliasUsed reports whether alias was observed during some
// InsertPath call.
func (pi *PathIndex) IsAliasUsed(alias string) bool {
	_, ok := pi.aliasHits[alias]
	return ok
}
