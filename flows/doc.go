/*
Package flows selects the content flows an output format will emit.

A logical page may carry several named flows, e.g. the main content and
overlay layers like watermarks. A Selector restricts output to a subset of
them. Selectors may be given as text:

    all                  every flow (the default)
    content, header      only these flows
    !watermark           every flow except watermarks
    content, !overlay    content only (exclusions win)
    all, !watermark      every flow except watermarks ('all' absorbs names)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flows

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.flows'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.flows")
}
