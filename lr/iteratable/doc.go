/*
Package iteratable implements an ordered set of LR items.

Set keeps the order in which items were added and answers membership
queries through a comparator. A set may be iterated while it grows: items
added during an iteration are visited by the same iteration. This is what
closure computations for LR item sets need.

Union and Difference modify the receiver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
