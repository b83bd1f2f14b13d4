package selector

// Combinator symbols understood by CSS. Combine accepts any symbol verbatim;
// these four are provided for convenience.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Selector is a CSS selector under construction. Selectors are persistent
// values: builder calls return a new incarnation and never modify the
// receiver, so the empty Selector{} is a valid root and this is legal:
//
//	s := selector.Selector{}.Element("div").ID("main")
//
// A failed invariant check does not panic but produces an errored selector
// which absorbs all further part calls; check with Err.
type Selector struct {
	text        string  // accumulated rendered representation
	last        Kind    // kind of the most recently appended part
	parts       *part   // per-segment history, shared between incarnations
	left, right *Selector // operands of a Combine, kept for diagnostics
	combinator  string
	err         error
}

// --- Simple selector parts -------------------------------------------------

// Element appends an element (type) part, rendered as the bare value.
func (s Selector) Element(value string) Selector { return s.append(KindElement, value) }

// ID appends an id part, rendered as "#value".
func (s Selector) ID(value string) Selector { return s.append(KindID, value) }

// Class appends a class part, rendered as ".value".
func (s Selector) Class(value string) Selector { return s.append(KindClass, value) }

// Attr appends an attribute part, rendered as "[value]". The value is taken
// verbatim and may include an attribute operator, e.g. `href$=".png"`.
func (s Selector) Attr(value string) Selector { return s.append(KindAttribute, value) }

// PseudoClass appends a pseudo-class part, rendered as ":value".
func (s Selector) PseudoClass(value string) Selector { return s.append(KindPseudoClass, value) }

// PseudoElement appends a pseudo-element part, rendered as "::value".
func (s Selector) PseudoElement(value string) Selector { return s.append(KindPseudoElement, value) }

// Package-level variants of the part operations start a fresh chain; they
// are the same operations called on an empty root.

func Element(value string) Selector       { return Selector{}.Element(value) }
func ID(value string) Selector            { return Selector{}.ID(value) }
func Class(value string) Selector         { return Selector{}.Class(value) }
func Attr(value string) Selector          { return Selector{}.Attr(value) }
func PseudoClass(value string) Selector   { return Selector{}.PseudoClass(value) }
func PseudoElement(value string) Selector { return Selector{}.PseudoElement(value) }

// append checks the two compound-selector invariants and, if both hold,
// produces the next incarnation of s. An errored selector absorbs the call.
func (s Selector) append(k Kind, value string) Selector {
	if s.err != nil {
		return s
	}
	if k.unique() && s.last == k {
		tracer().Debugf("selector %q rejects duplicate %s part", s.text, k)
		s.err = DuplicatePartError{Kind: k}
		return s
	}
	if k.rank() < s.last.rank() {
		tracer().Debugf("selector %q rejects %s part after %s part", s.text, k, s.last)
		s.err = OutOfOrderPartError{Prev: s.last, Next: k}
		return s
	}
	return Selector{
		text:  s.text + k.render(value),
		last:  k,
		parts: s.parts.push(k),
	}
}

// --- Combining -------------------------------------------------------------

// Combine joins two selectors with a combinator symbol, usually one of
// Descendant, Child, Adjacent or Sibling. The symbol is not validated and is
// always padded with one space on each side; the descendant combinator " "
// therefore renders as three spaces.
//
// The result starts a fresh compound-selector segment: part history and
// uniqueness tracking do not carry across a combinator boundary. Combine
// never fails; if an operand carries an error, the result carries it along.
func Combine(a Selector, combinator string, b Selector) Selector {
	err := a.err
	if err == nil {
		err = b.err
	}
	return Selector{
		text:       a.text + " " + combinator + " " + b.text,
		left:       &a,
		right:      &b,
		combinator: combinator,
		err:        err,
	}
}

// --- Accessors -------------------------------------------------------------

// String returns the accumulated selector text. It never fails; on an
// errored chain it returns the text accumulated up to the failed call.
func (s Selector) String() string {
	return s.text
}

// Stringify returns the selector's text, i.e. s.String().
func Stringify(s Selector) string {
	return s.String()
}

// Err returns the first invariant violation of the builder chain, or nil.
// Errors match ErrDuplicatePart or ErrOutOfOrder with errors.Is, and
// DuplicatePartError or OutOfOrderPartError with errors.As.
func (s Selector) Err() error {
	return s.err
}

// Parts returns the kinds of all parts of the current compound-selector
// segment, in append order. It is empty for a fresh root and for the result
// of a Combine.
func (s Selector) Parts() []Kind {
	return s.parts.kinds()
}
