/*
Package artifact reads and writes the files handed from one compiler stage
to the next: the token stream produced by the lexer and the syntax tree
produced by the parser. Both are available as XML and as YAML.

Token stream XML:

    <TOKENSTREAM>
      <TOK><ID>0</ID><CLASS>KEYWORD</CLASS><WORD>main</WORD></TOK>
      ...
    </TOKENSTREAM>

Syntax tree XML:

    <SYNTREE>
      <ROOT><UNID>1</UNID><SYMB>E'</SYMB><CHILDREN><ID>9</ID></CHILDREN></ROOT>
      <INNERNODES>
        <IN><UNID>9</UNID><SYMB>PROG</SYMB><PARENT>1</PARENT><CHILDREN>...</CHILDREN></IN>
      </INNERNODES>
      <LEAFNODES>
        <LEAF><PARENT>9</PARENT><UNID>2</UNID><TERMINAL>KEYWORD: main</TERMINAL></LEAF>
      </LEAFNODES>
    </SYNTREE>

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package artifact

import (
	"fmt"
	"strings"
)

// Format is a serialization format for artifacts.
type Format int

// Supported formats.
const (
	XML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format for a name, e.g. from a configuration file
// or a file extension ("xml", "yaml", "yml"). Case is ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "xml":
		return XML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return XML, fmt.Errorf("unknown artifact format %q", name)
}
