package artifact

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/syntree"
	"gopkg.in/yaml.v3"
)

type xmlSynTree struct {
	XMLName xml.Name  `xml:"SYNTREE"`
	Root    xmlNode   `xml:"ROOT"`
	Inner   []xmlNode `xml:"INNERNODES>IN"`
	Leaves  []xmlLeaf `xml:"LEAFNODES>LEAF"`
}

type xmlNode struct {
	UNID     int    `xml:"UNID"`
	Symbol   string `xml:"SYMB"`
	Parent   *int   `xml:"PARENT,omitempty"`
	Children []int  `xml:"CHILDREN>ID"`
}

type xmlLeaf struct {
	Parent   int    `xml:"PARENT"`
	UNID     int    `xml:"UNID"`
	Terminal string `xml:"TERMINAL"`
}

type yamlSynTree struct {
	Root   yamlNode   `yaml:"root"`
	Inner  []yamlNode `yaml:"inner,omitempty"`
	Leaves []yamlLeaf `yaml:"leaves,omitempty"`
}

type yamlNode struct {
	ID       int    `yaml:"id"`
	Symbol   string `yaml:"symbol"`
	Parent   *int   `yaml:"parent,omitempty"`
	Children []int  `yaml:"children,flow"`
}

type yamlLeaf struct {
	Parent int    `yaml:"parent"`
	ID     int    `yaml:"id"`
	Class  string `yaml:"class"`
	Value  string `yaml:"value"`
}

// WriteTree writes a syntax tree.
func WriteTree(w io.Writer, format Format, tree *syntree.Tree) error {
	a := tree.Artifact()
	switch format {
	case XML:
		doc := xmlSynTree{
			Root: xmlNode{UNID: a.Root.ID, Symbol: a.Root.Symbol, Children: a.Root.Children},
		}
		for _, in := range a.Inner {
			parent := in.Parent
			doc.Inner = append(doc.Inner, xmlNode{
				UNID: in.ID, Symbol: in.Symbol, Parent: &parent, Children: in.Children,
			})
		}
		for _, l := range a.Leaves {
			doc.Leaves = append(doc.Leaves, xmlLeaf{
				Parent: l.Parent, UNID: l.ID, Terminal: terminalDescriptor(l.Class, l.Value),
			})
		}
		return writeXML(w, doc)
	case YAML:
		doc := yamlSynTree{
			Root: yamlNode{ID: a.Root.ID, Symbol: a.Root.Symbol, Children: a.Root.Children},
		}
		for _, in := range a.Inner {
			parent := in.Parent
			doc.Inner = append(doc.Inner, yamlNode{
				ID: in.ID, Symbol: in.Symbol, Parent: &parent, Children: in.Children,
			})
		}
		for _, l := range a.Leaves {
			doc.Leaves = append(doc.Leaves, yamlLeaf{
				Parent: l.Parent, ID: l.ID, Class: l.Class.String(), Value: l.Value,
			})
		}
		return writeYAML(w, doc)
	}
	return fmt.Errorf("cannot write syntax tree as %v", format)
}

// ReadTree reads a syntax tree and rebuilds it.
func ReadTree(r io.Reader, format Format) (*syntree.Tree, error) {
	a := &syntree.Artifact{}
	switch format {
	case XML:
		var doc xmlSynTree
		if err := xml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot read syntax tree: %w", err)
		}
		a.Root = syntree.RootRecord{ID: doc.Root.UNID, Symbol: doc.Root.Symbol, Children: doc.Root.Children}
		for _, in := range doc.Inner {
			if in.Parent == nil {
				return nil, fmt.Errorf("inner node %d has no parent", in.UNID)
			}
			a.Inner = append(a.Inner, syntree.InnerRecord{
				ID: in.UNID, Symbol: in.Symbol, Parent: *in.Parent, Children: in.Children,
			})
		}
		for _, l := range doc.Leaves {
			class, value, err := parseTerminalDescriptor(l.Terminal)
			if err != nil {
				return nil, fmt.Errorf("leaf %d: %w", l.UNID, err)
			}
			a.Leaves = append(a.Leaves, syntree.LeafRecord{
				Parent: l.Parent, ID: l.UNID, Class: class, Value: value,
			})
		}
	case YAML:
		var doc yamlSynTree
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot read syntax tree: %w", err)
		}
		a.Root = syntree.RootRecord{ID: doc.Root.ID, Symbol: doc.Root.Symbol, Children: doc.Root.Children}
		for _, in := range doc.Inner {
			if in.Parent == nil {
				return nil, fmt.Errorf("inner node %d has no parent", in.ID)
			}
			a.Inner = append(a.Inner, syntree.InnerRecord{
				ID: in.ID, Symbol: in.Symbol, Parent: *in.Parent, Children: in.Children,
			})
		}
		for _, l := range doc.Leaves {
			class, err := splc.ParseTokClass(l.Class)
			if err != nil {
				return nil, fmt.Errorf("leaf %d: %w", l.ID, err)
			}
			a.Leaves = append(a.Leaves, syntree.LeafRecord{
				Parent: l.Parent, ID: l.ID, Class: class, Value: l.Value,
			})
		}
	default:
		return nil, fmt.Errorf("cannot read syntax tree as %v", format)
	}
	return syntree.Rebuild(a)
}

// terminalDescriptor formats a leaf's terminal as "CLASS: value".
func terminalDescriptor(class splc.TokClass, value string) string {
	return class.String() + ": " + value
}

func parseTerminalDescriptor(s string) (splc.TokClass, string, error) {
	k := strings.Index(s, ": ")
	if k < 0 {
		return splc.Error, "", fmt.Errorf("malformed terminal %q", s)
	}
	class, err := splc.ParseTokClass(s[:k])
	if err != nil {
		return splc.Error, "", err
	}
	return class, s[k+2:], nil
}
