/*
Package maybe implements an option type for values which may be absent.

Box layout knows a couple of quantities which are optional by nature,
e.g. a maximum width imposed on a replaced element by its enclosing inline
container. Using Maybe for these instead of sentinel values (-1, zero)
avoids confusing "no constraint" with "constrained to zero".

Maybe is a small value type and never allocates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe
