/*
Package content models the already laid-out content tree the pagination
core consumes.

Content nodes are created by an upstream layout phase, which has resolved
all geometry. From the point of view of this module nodes are read-only:
line fitting asks them how wide they may get, pagination asks them where
they are.

Nodes come in a couple of kinds:

    Container    structural container (flow roots, block containers)
    Box          generic block-level box
    Inline       inline box with children; carries border/padding/margin on both edges
    InlineBlock  atomic inline-level box, never broken across lines
    Text         a run of text, already tokenized and measured
    Replaced     replaced content, e.g. an embedded image
    Spacer       whitespace or fixed gap between inline content

Every node links to a StaticBoxGeometry record, which holds margins, borders,
padding and the whitespace-preservation flag. Geometry records are computed
once and may be shared between nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package content

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.content'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.content")
}
