/*
Package writers holds helpers shared by the reference format writers in its
sub-packages:

    textwriter   plain text, one block of lines per logical page
    htmlwriter   markup tables, one table per logical page
    pdfwriter    print documents, one sheet per physical page

The reference writers render box frames and text runs only. They implement
output.PageWriter and are wired to a processor through their Format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package writers

import (
	"github.com/npillmayer/schuko/tracing"
)

// Tracer traces with key 'pagecore.writers'.
func Tracer() tracing.Trace {
	return tracing.Select("pagecore.writers")
}
