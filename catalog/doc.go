/*
Package catalog classifies standard HTML element tags.

Overview

Every standard HTML tag is assigned a pair of classifications: an
ElementType, telling whether an element of this tag may own child nodes,
and a DisplayType, telling whether the element is laid out as a block or
inline. The classification is static data, taken from the WHATWG HTML
standard, and lookup is a pure function. Tags unknown to the standard
have no catalog entry; callers decide on a fallback policy themselves
(package semtree treats them as block containers).

The display classification carries layout intent only. It selects which
output variant a converter instantiates and is not enforced as a
rendering rule.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog
