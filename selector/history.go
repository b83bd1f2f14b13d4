package selector

// part is a cell of the persistent part history of a compound-selector
// segment. Histories grow at the head only, so incarnations of a selector
// share their common prefix; a branch chaining off an earlier incarnation
// cannot observe parts appended on another branch.
//
// Only the head cell is ever inspected by the invariant checks (via
// Selector.last); the full history serves diagnostics, see Parts and Dump.
type part struct {
	kind Kind
	prev *part
}

// push is safe on a nil history.
func (p *part) push(k Kind) *part {
	return &part{kind: k, prev: p}
}

func (p *part) count() int {
	n := 0
	for cell := p; cell != nil; cell = cell.prev {
		n++
	}
	return n
}

// kinds lists the history in append order.
func (p *part) kinds() []Kind {
	ks := make([]Kind, p.count())
	i := len(ks)
	for cell := p; cell != nil; cell = cell.prev {
		i--
		ks[i] = cell.kind
	}
	return ks
}
