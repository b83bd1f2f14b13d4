/*
Package selector builds CSS selector strings from immutable value chains.

A Selector is a persistent value: every builder call returns a new incarnation
and leaves the original untouched. Chains may therefore branch from a shared
prefix, e.g. before and after a Combine, without any aliasing between the
branches.

	s := selector.Element("div").ID("main").Class("container")
	s.String()   // ⇒ "div#main.container"

Within one compound selector (between combinator boundaries) two invariants
are enforced: element, id and pseudo-element parts may occur at most once,
and parts must appear in the order element, id, class, attribute,
pseudo-class, pseudo-element. Violations do not panic; the chain switches to
an errored state which absorbs further calls and is queried with Err.

Immutable selectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.selector'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.selector")
}
