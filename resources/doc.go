/*
Package resources is a registry of external resources shared between
report runs.

A Manager is constructed explicitly and handed to everyone who needs it.
It caches what it learns about resources, e.g. the natural size of images.
Managers are safe for concurrent use; lazy population of the cache is
synchronized internally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.resources'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.resources")
}
