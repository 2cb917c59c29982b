/*
Package style holds computed CSS properties as handed over from the
styling phase.

The pagination core does not resolve CSS cascades. It consumes property
values which have already been computed upstream, and it only ever looks
at a small subset of them: margins, borders, padding and white-space
handling, from which static box geometry is derived (see package content).
Properties are organized in groups, following the CSS topics they belong to.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'pagecore.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.style")
}
