/*
Package paginate drives output processors through the pages of a report.

For every logical page the driver determines a grid of physical pages from
the printable area of the output format. It then calls the processor once
for every grid cell, in row-major order, followed by one call for the
logical page as a whole. Processors which operate in logical mode only are
not bothered with grid cells, and vice versa.

Pagination is synchronous and runs on the calling goroutine. It may be
canceled through a context. The context is polled at page boundaries; on
cancellation no further pages are issued and the run ends with status
StatusCanceled. A failing page aborts the whole run with status
StatusFailed. Pages already emitted remain in the destination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package paginate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.paginate'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.paginate")
}
