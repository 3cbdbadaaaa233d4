package pyfmtcli

import (
	"fmt"
	"os"

	"github.com/gnolang/pyfmt/internal/nodeutil"
	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

// Document pairs a fixture-built module with the source text it was
// matched against, the unit pyfmt render/fix-indent operate on.
type Document struct {
	Path   string
	Source string
	Module *pyast.Node
}

// LoadDocument reads a fixture file and its paired source file (same path,
// ".json" swapped for ".py") and matches the one against the other.
func LoadDocument(fixturePath, sourcePath string) (*Document, error) {
	fixtureData, err := os.ReadFile(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("pyfmtcli: reading fixture %s: %w", fixturePath, err)
	}
	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("pyfmtcli: reading source %s: %w", sourcePath, err)
	}
	module, err := DecodeFixture(fixtureData)
	if err != nil {
		return nil, fmt.Errorf("pyfmtcli: decoding fixture %s: %w", fixturePath, err)
	}
	source := string(sourceData)
	if _, err := pymatch.GetSource(module, source, nil); err != nil {
		return nil, fmt.Errorf("pyfmtcli: matching %s against %s: %w", fixturePath, sourcePath, err)
	}
	return &Document{Path: sourcePath, Source: source, Module: module}, nil
}

// Render re-emits a document's source from its matched (and possibly
// mutated) tree, the read side of the round trip spec.md's mutation-
// locality property describes.
func Render(doc *Document) (string, error) {
	return pymatch.GetSource(doc.Module, "", nil)
}

// FixIndent locates nodeIndex'th top-level statement in doc's module and
// re-renders it with indentation fixed up to its current tree position,
// the CLI-facing entry point for FixSourceIndentation.
func FixIndent(doc *Document, nodeIndex int) (string, error) {
	if nodeIndex < 0 || nodeIndex >= len(doc.Module.Body) {
		return "", fmt.Errorf("pyfmtcli: statement index %d out of range (module has %d)", nodeIndex, len(doc.Module.Body))
	}
	target := doc.Module.Body[nodeIndex]
	return pymatch.FixSourceIndentation(doc.Module, target, nil)
}

// IndentLevel reports the indent level of a document's nodeIndex'th
// top-level statement, a thin nodeutil wrapper the CLI surfaces for
// debugging fixtures.
func IndentLevel(doc *Document, nodeIndex int) (int, error) {
	if nodeIndex < 0 || nodeIndex >= len(doc.Module.Body) {
		return 0, fmt.Errorf("pyfmtcli: statement index %d out of range (module has %d)", nodeIndex, len(doc.Module.Body))
	}
	return nodeutil.IndentLevel(doc.Module, doc.Module.Body[nodeIndex])
}
