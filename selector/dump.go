package selector

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders the combine tree of a selector, with one leaf per compound
// selector. Intended for debugging nested Combine results.
//
//	Dump(Combine(Element("div").ID("main"), Child, Class("row")))
//
// produces
//
//	.
//	├── ⟨child⟩
//	│   ├── "div#main"  [element id]
//	│   └── ".row"  [class]
func Dump(s Selector) string {
	printer := tp.New()
	dumpNode(printer, s)
	return printer.String()
}

func dumpNode(printer tp.Tree, s Selector) {
	if s.left == nil {
		printer.AddNode(leafLabel(s))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("⟨%s⟩", combinatorName(s.combinator)))
	dumpNode(branch, *s.left)
	dumpNode(branch, *s.right)
}

func leafLabel(s Selector) string {
	ks := s.Parts()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return fmt.Sprintf("%q  [%s]", s.text, strings.Join(names, " "))
}

func combinatorName(symbol string) string {
	switch symbol {
	case Descendant:
		return "descendant"
	case Child:
		return "child"
	case Adjacent:
		return "adjacent sibling"
	case Sibling:
		return "general sibling"
	}
	return fmt.Sprintf("%q", symbol)
}
