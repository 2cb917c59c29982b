/*
Package config provides read-only access to the configuration of a report
run.

Configuration is a plain key/value store with dotted keys, e.g.
"report.output.flows". Any store implementing Configuration will do,
including the configuration types of package schuko. Conf is a simple
map-based implementation, which may be loaded from YAML:

    report:
      title: Quarterly Figures
      output:
        font-storage: reference
        flows: content, !watermark
      page:
        width: 210mm
        height: 297mm

Values are never mutated by the pagination core. Keys which are not set
fall back to the defaults listed in Defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.config'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.config")
}
