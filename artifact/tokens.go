package artifact

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lexer"
	"gopkg.in/yaml.v3"
)

type xmlTokenStream struct {
	XMLName xml.Name   `xml:"TOKENSTREAM"`
	Tokens  []xmlToken `xml:"TOK"`
}

type xmlToken struct {
	ID    int    `xml:"ID"`
	Class string `xml:"CLASS"`
	Word  string `xml:"WORD"`
}

type yamlToken struct {
	ID    int    `yaml:"id"`
	Class string `yaml:"class"`
	Value string `yaml:"value"`
}

// WriteTokens writes a token stream.
func WriteTokens(w io.Writer, format Format, tokens []lexer.Token) error {
	switch format {
	case XML:
		stream := xmlTokenStream{Tokens: make([]xmlToken, len(tokens))}
		for i, t := range tokens {
			stream.Tokens[i] = xmlToken{ID: t.ID(), Class: t.Class().String(), Word: t.Lexeme()}
		}
		return writeXML(w, stream)
	case YAML:
		stream := make([]yamlToken, len(tokens))
		for i, t := range tokens {
			stream[i] = yamlToken{ID: t.ID(), Class: t.Class().String(), Value: t.Lexeme()}
		}
		return writeYAML(w, stream)
	}
	return fmt.Errorf("cannot write tokens as %v", format)
}

// ReadTokens reads a token stream. Token streams do not record source lines,
// so the tokens returned have line 0.
func ReadTokens(r io.Reader, format Format) ([]lexer.Token, error) {
	var tokens []lexer.Token
	switch format {
	case XML:
		var stream xmlTokenStream
		if err := xml.NewDecoder(r).Decode(&stream); err != nil {
			return nil, fmt.Errorf("cannot read token stream: %w", err)
		}
		for _, t := range stream.Tokens {
			tok, err := makeToken(t.ID, t.Class, t.Word)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	case YAML:
		var stream []yamlToken
		if err := yaml.NewDecoder(r).Decode(&stream); err != nil && err != io.EOF {
			return nil, fmt.Errorf("cannot read token stream: %w", err)
		}
		for _, t := range stream {
			tok, err := makeToken(t.ID, t.Class, t.Value)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	default:
		return nil, fmt.Errorf("cannot read tokens as %v", format)
	}
	return tokens, nil
}

func makeToken(id int, class string, value string) (lexer.Token, error) {
	c, err := splc.ParseTokClass(class)
	if err != nil {
		return lexer.Token{}, fmt.Errorf("token %d: %w", id, err)
	}
	return lexer.MakeToken(c, value, id, 0), nil
}

func writeXML(w io.Writer, v interface{}) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
