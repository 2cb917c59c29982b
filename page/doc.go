/*
Package page holds logical pages and the grid which maps them onto
physical pages.

A logical page is one unit of finished report content, bounded by a
content-flow page break. If its content exceeds the printable area of one
output sheet, it is tiled onto a grid of physical pages. Grids are visited
in row-major order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.page'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.page")
}
