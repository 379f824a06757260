package syntax

import (
	"testing"

	"github.com/rautio/cpbundle/internal/parser"
)

func mustParse(t *testing.T, src string) *parser.AST {
	t.Helper()
	p, err := parser.NewParser()
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	defer p.Close()

	ast, err := p.ParseFile("lib.rs", []byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return ast
}

func TestItemsClassifiesModAndUse(t *testing.T) {
	ast := mustParse(t, "pub mod m;\nuse std::fmt;\nfn f() {}\n")
	defer ast.Close()

	items := Items(ast.Root)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Kind != KindMod || !items[0].Public {
		t.Fatalf("item 0: expected public mod, got kind=%v public=%v", items[0].Kind, items[0].Public)
	}
	if items[1].Kind != KindUse || items[1].Public {
		t.Fatalf("item 1: expected private use, got kind=%v public=%v", items[1].Kind, items[1].Public)
	}
	if items[2].Kind != KindOther {
		t.Fatalf("item 2: expected other, got kind=%v", items[2].Kind)
	}
}

func TestItemsAttachesLeadingAttrs(t *testing.T) {
	ast := mustParse(t, "#[cfg(test)]\nmod tests {\n}\n")
	defer ast.Close()

	items := Items(ast.Root)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !IsTestModule(items[0]) {
		t.Fatalf("expected test module, attrs=%v", items[0].Attrs)
	}
}

func TestModuleNameAndBody(t *testing.T) {
	ast := mustParse(t, "mod inner {\n    pub fn f() {}\n}\n")
	defer ast.Close()

	items := Items(ast.Root)
	name, ok := items[0].ModuleName()
	if !ok || name != "inner" {
		t.Fatalf("ModuleName() = %q, %v", name, ok)
	}
	body, inline := items[0].ModuleBody()
	if !inline || body == nil {
		t.Fatalf("expected inline body")
	}
}

func TestModuleBodyAbsentForDeclaredOnly(t *testing.T) {
	ast := mustParse(t, "mod inner;\n")
	defer ast.Close()

	items := Items(ast.Root)
	if _, inline := items[0].ModuleBody(); inline {
		t.Fatalf("expected declared-only module to have no inline body")
	}
}

func TestUseArgumentTextSkipsVisibility(t *testing.T) {
	ast := mustParse(t, "pub use crate::inner::Thing;\n")
	defer ast.Close()

	items := Items(ast.Root)
	if got := items[0].UseArgumentText(); got != "crate::inner::Thing" {
		t.Fatalf("UseArgumentText() = %q", got)
	}
}

func TestStripAttrsDropsNoiseKeepsOthers(t *testing.T) {
	ast := mustParse(t, "#[allow(dead_code)]\n#[derive(Debug)]\nstruct S;\n")
	defer ast.Close()

	items := Items(ast.Root)
	kept := StripAttrs(items[0].Attrs)
	if len(kept) != 1 || kept[0].Text() != "#[derive(Debug)]" {
		t.Fatalf("StripAttrs() kept %v", kept)
	}
}
