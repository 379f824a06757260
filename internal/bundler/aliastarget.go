package bundler

import (
	"strings"

	"github.com/rautio/cpbundle/internal/syntax"
)

// aliasKey and targetPath implement the canonical alias/target
// derivation from spec §4.4, given a leaf's segments as found in the
// use-tree and the import_path the walker was positioned at when it
// saw them.
//
// A renamed leaf (`use crate::x::Thing as Alias`) registers its alias
// under the rename rather than the leaf's last path segment — the
// spec is silent on renamed re-exports, but the rename is exactly the
// new name becoming publicly visible, so it is the identifier a
// downstream `use lib_a::Alias` would reference. See DESIGN.md.
//
// A leaf rooted at `crate::` or `self::` (the usual spelling for an
// intra-crate re-export, e.g. `pub use crate::inner::Thing;`) has that
// leading segment stripped before either key is derived: `crate`/`self`
// name the current crate's own root, which is already what importPath
// anchors to, so leaving the literal segment in would double it up
// into a path like `lib_a/crate/inner/Thing` that never matches the
// housing module's real import path (`lib_a/inner`). See DESIGN.md.
func aliasKey(importPath string, leaf syntax.Leaf) string {
	last := leaf.Alias
	if last == "" {
		segs := stripCrateSelfPrefix(leaf.Segments)
		if len(segs) > 0 {
			last = segs[len(segs)-1]
		}
	}
	return importPath + "/" + last
}

// targetPath derives the fully qualified path a leaf's segments
// resolve to. std is special-cased to the bare std/... path so that a
// re-export of a standard-library item never pulls in a user crate.
func targetPath(importPath string, segments []string) string {
	segments = stripCrateSelfPrefix(segments)
	if len(segments) > 0 && segments[0] == "std" {
		return strings.Join(segments, "/")
	}
	return importPath + "/" + strings.Join(segments, "/")
}

// stripCrateSelfPrefix drops a leading `crate` or `self` segment, the
// only position the grammar ever puts one in a use-tree leaf.
func stripCrateSelfPrefix(segments []string) []string {
	if len(segments) > 0 && (segments[0] == "crate" || segments[0] == "self") {
		return segments[1:]
	}
	return segments
}
