/*
Package sequence measures inline content for line fitting.

Every piece of inline content is paired with a sequence element, a stateless
classifier which tells how wide the content must get (minimum), how wide it
may get (maximum), and whether its whitespace has to be preserved. Elements
are classified as START, CONTENT or END. START and END elements represent the
leading and trailing edges of an inline box; they never stretch or shrink.
Only CONTENT elements may absorb extra space during justification.

A List collects one candidate line as pairs of (element, node). Collect
produces such a list for an inline subtree, with the edges of every inline
box properly bracketing its content.

Handing a node of the wrong kind to an element is a programming error. It is
signalled by panicking with a ContractViolation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sequence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.sequence'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.sequence")
}
