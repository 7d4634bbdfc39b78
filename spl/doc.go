/*
Package spl is the front end for SPL, a small procedural teaching language.

SPL programs consist of a main program with global variables and an
algorithm, followed by function declarations:

    main
    num V_x ,
    begin
        V_x < input ;
        print V_x ;
    end

The front end tokenizes the program with package lexer and parses the
tokens with the SLR(1) parser of package lr/slr. The grammar of SPL is
fixed; its parse table is either generated from the grammar, loaded from
a table resource, or taken from a cache of generated tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splc.spl'.
func tracer() tracing.Trace {
	return tracing.Select("splc.spl")
}
