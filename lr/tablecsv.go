package lr

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TableError is a malformed parse table resource.
type TableError struct {
	Row    int    // row in the resource, header is row 0
	Column int    // column in the resource, state label is column 0
	Cell   string // offending cell content
	Msg    string
}

func (e *TableError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("parse table row %d, column %d: %s", e.Row, e.Column, e.Msg)
	}
	return fmt.Sprintf("parse table row %d, column %d: %s: %q", e.Row, e.Column, e.Msg, e.Cell)
}

// LoadTable reads a parse table from a semicolon-separated table resource.
//
// Line 0 is a header naming the symbol of every column; column 0 holds state
// labels and is ignored otherwise. Every following line holds the entries for
// the next state, starting with state 0. A blank line is a state without
// entries, so every line after the header counts as a state. Cells in columns
// of non-terminals (as reported by isNonTerminal) are goto targets. Cells in
// all other columns are actions: s<N> for shift, r<N> for reduce, acc for
// accept. Empty cells have no entry. Cells may be quoted and are trimmed.
// Shift and goto targets have to be states of the table.
func LoadTable(r io.Reader, isNonTerminal func(string) bool) (*ParseTable, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read parse table: %w", err)
	}
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, &TableError{Msg: "missing header"}
	}
	header, err := splitTableLine(lines[0])
	if err != nil {
		return nil, &TableError{Row: 0, Msg: err.Error()}
	}
	var terminals, nonterminals []string
	seen := make(map[string]bool)
	for j := 1; j < len(header); j++ {
		name := strings.TrimSpace(header[j])
		if name == "" {
			return nil, &TableError{Row: 0, Column: j, Msg: "empty symbol name"}
		}
		if seen[name] {
			return nil, &TableError{Row: 0, Column: j, Cell: name, Msg: "duplicate symbol"}
		}
		seen[name] = true
		if isNonTerminal(name) {
			nonterminals = append(nonterminals, name)
		} else {
			terminals = append(terminals, name)
		}
	}
	rows := lines[1:]
	table := NewParseTable(len(rows), terminals, nonterminals)
	for state, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := splitTableLine(line)
		if err != nil {
			return nil, &TableError{Row: state + 1, Msg: err.Error()}
		}
		if len(row) > len(header) {
			return nil, &TableError{Row: state + 1, Column: len(header), Msg: "more cells than header columns"}
		}
		for j := 1; j < len(row); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			symbol := strings.TrimSpace(header[j])
			if isNonTerminal(symbol) {
				target, err := strconv.Atoi(cell)
				if err != nil || target < 0 {
					return nil, &TableError{Row: state + 1, Column: j, Cell: cell, Msg: "malformed goto entry"}
				}
				if err = table.SetGoto(state, symbol, target); err != nil {
					return nil, &TableError{Row: state + 1, Column: j, Cell: cell, Msg: err.Error()}
				}
				continue
			}
			action, err := ParseAction(cell)
			if err == nil {
				err = table.SetAction(state, symbol, action)
			}
			if err != nil {
				return nil, &TableError{Row: state + 1, Column: j, Cell: cell, Msg: err.Error()}
			}
		}
	}
	tracer().Infof("loaded parse table with %d states", table.StateCount())
	return table, nil
}

// splitTableLine splits a single line of a table resource into cells.
func splitTableLine(line string) ([]string, error) {
	rd := csv.NewReader(strings.NewReader(line))
	rd.Comma = ';'
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true
	rd.LazyQuotes = true
	return rd.Read()
}

// ParseAction parses a table cell in notation s<N>, r<N> or acc.
// The empty string is an error action.
func ParseAction(cell string) (Action, error) {
	switch {
	case cell == "":
		return Action{}, nil
	case cell == "acc":
		return Accept(), nil
	case strings.HasPrefix(cell, "s"), strings.HasPrefix(cell, "r"):
		n, err := strconv.Atoi(cell[1:])
		if err != nil || n < 0 || strings.HasPrefix(cell[1:], "+") {
			return Action{}, fmt.Errorf("malformed action")
		}
		if cell[0] == 's' {
			return Shift(n), nil
		}
		return Reduce(n), nil
	}
	return Action{}, fmt.Errorf("unknown action")
}

// WriteCSV writes a parse table in the format LoadTable reads.
// Terminal columns precede non-terminal columns.
func (t *ParseTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	header := append([]string{"state"}, t.terminals...)
	header = append(header, t.nonterminals...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for state := 0; state < t.StateCount(); state++ {
		row[0] = strconv.Itoa(state)
		for j, a := range t.terminals {
			row[j+1] = t.Action(state, a).String()
		}
		for j, A := range t.nonterminals {
			row[len(t.terminals)+j+1] = ""
			if target, ok := t.Goto(state, A); ok {
				row[len(t.terminals)+j+1] = strconv.Itoa(target)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
