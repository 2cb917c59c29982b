/*
Package css converts textual CSS dimension values into the fixed-point
unit used throughout the pagination core.

All geometry inside the core is expressed in dimen.DU. Conversion from CSS
units (pt, px, mm, cm, in) happens once, when static box geometry is
derived from computed styles; percentages are kept symbolic until a
reference length is known.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.style")
}
