/*
Package tree implements a small all-purpose tree type.

Content trees handed to the pagination core are built and resolved by an
upstream layout phase and are read-only from then on. This package offers
a generic node type to compose such trees from (see package content) and
a synchronous depth-first walk, which visits nodes in document order and
signals both entering and leaving a node. The latter is what inline
measurement needs to bracket the contribution of a box.

Walks are performed on the calling goroutine; there is no hidden
concurrency. Children slices are guarded by a mutex, as trees may be
read by more than one report run at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.tree'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.tree")
}

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an enter-function to not descend into
// the children of the current node. The leave-function is still called.
var SkipChildren = errors.New("skip children of node")
