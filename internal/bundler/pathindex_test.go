package bundler

import "testing"

func TestInsertPathPrefixClosure(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertPath("lib_a/m/f")

	for _, p := range []string{"lib_a", "lib_a/m", "lib_a/m/f"} {
		if !pi.ContainsPath(p) {
			t.Fatalf("expected prefix %q to be present", p)
		}
	}
}

func TestInsertPathIdempotent(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertPath("lib_a/m/f")
	pi.InsertPath("lib_a/m/f")

	if !pi.ContainsPath("lib_a/m/f") {
		t.Fatalf("expected path present after repeat insert")
	}
}

func TestInsertPathAliasClosure(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertAlias("lib_a/Thing", "lib_a/inner/Thing")

	pi.InsertPath("lib_a/Thing")

	if !pi.ContainsPath("lib_a/inner/Thing") {
		t.Fatalf("expected alias target to be inserted")
	}
	if !pi.ContainsPath("lib_a/inner") {
		t.Fatalf("expected alias target's prefix to be inserted")
	}
	if !pi.IsAliasUsed("lib_a/Thing") {
		t.Fatalf("expected alias to be marked used")
	}
}

func TestInsertPathAliasChain(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertAlias("lib_a/X", "lib_a/deep/nested/X")

	pi.InsertPath("lib_a/X")

	for _, p := range []string{"lib_a/deep", "lib_a/deep/nested", "lib_a/deep/nested/X"} {
		if !pi.ContainsPath(p) {
			t.Fatalf("expected nested alias target prefix %q present", p)
		}
	}
}

func TestInsertAliasLastRegistrationWins(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertAlias("lib_a/Alias", "lib_a/first/Thing")
	pi.InsertAlias("lib_a/Alias", "lib_a/second/Thing")

	pi.InsertPath("lib_a/Alias")

	if pi.ContainsPath("lib_a/first/Thing") {
		t.Fatalf("expected first registration to be overwritten")
	}
	if !pi.ContainsPath("lib_a/second/Thing") {
		t.Fatalf("expected second (last) registration to win")
	}
}

func TestIsAliasUsedFalseUntilHit(t *testing.T) {
	pi := NewPathIndex()
	pi.InsertAlias("lib_a/Thing", "lib_a/inner/Thing")

	if pi.IsAliasUsed("lib_a/Thing") {
		t.Fatalf("expected alias unused before any insert")
	}
}
