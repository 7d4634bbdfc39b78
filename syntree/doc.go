/*
Package syntree implements the syntax trees built by the SPL parser.

A tree consists of inner nodes, created by reduce actions and labeled with
non-terminals, and leaf nodes, created by shift actions and carrying the
token shifted. Parents own their children; children know their parent by
id only.

Inner nodes for epsilon-productions have no children. They are told apart
from leaves by the absence of a token, not by their number of children.

Trees may be flattened to an Artifact, a set of records suitable for
serialization, and rebuilt from one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntree
