/*
Package output defines the contract between pagination and format writers.

A Processor receives finished pages through two callbacks. Formats which
tile oversized content onto several sheets consume ProcessPhysicalPage,
which is called once for every cell of a page grid. Formats which treat a
logical page as one unit consume ProcessLogicalPage. A processor operates
in one of these modes, or in both, and ignores the other callback.

StreamProcessor is the standard implementation. It owns exactly one
destination stream and delegates rendering to a PageWriter, which it
creates lazily on the first page. A run which produces no pages never
creates, commits or closes a writer. After ProcessingContentFinished the
processor accepts no further pages.

MetaData describes the static capabilities of a format. It is answerable
right after construction and never depends on page content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package output

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.output'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.output")
}
