/*
Package splc is the front end of a compiler for SPL, a small procedural
teaching language with a fixed grammar.

splc strives to be a small and transparent pipeline: a lexer classifies raw
characters into typed tokens, and an SLR(1) shift-reduce parser, driven by a
precomputed action/goto table, builds a labeled syntax tree. Package
structure is as follows:

■ lexer: Package lexer implements the lexical classifier and a maximal-munch
tokenizer with backtracking recovery.

■ lr: Package lr implements grammars, grammar analysis, the parse table and
an SLR(1) table generator. Sub-package slr contains the shift-reduce engine.

■ syntree: Package syntree implements the syntax tree built by the parser,
together with its flat artifact form.

■ spl: Package spl holds the SPL grammar and wires lexer and parser into a
front end.

The base package contains data types which are used throughout all the other
packages: token classes and identifier counters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splc
