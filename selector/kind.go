package selector

// Kind enumerates the kinds of simple selectors a compound selector is made
// of. The zero value KindNone tags a selector without parts, i.e. a fresh
// root or the result of a Combine.
type Kind int8

const (
	KindNone Kind = iota
	KindElement
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// rank is the ordering weight of a kind within a compound selector, as
// mandated by the CSS specification: element < id < class < attribute <
// pseudo-class < pseudo-element. KindNone ranks below everything, so any
// part may start a fresh segment.
func (k Kind) rank() int {
	return int(k)
}

// unique flags the kinds which may occur at most once per compound selector.
func (k Kind) unique() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

var kindNames = []string{"none", "element", "id", "class", "attribute", "pseudo-class", "pseudo-element"}

func (k Kind) String() string {
	if k < KindNone || k > KindPseudoElement {
		return "invalid"
	}
	return kindNames[k]
}

// render produces the literal textual form of a simple selector part, e.g.
// "#main" for an ID part with value "main".
func (k Kind) render(value string) string {
	switch k {
	case KindElement:
		return value
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	}
	return ""
}
