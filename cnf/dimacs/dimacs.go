// Package dimacs reads and writes the CNF formula text format consumed by
// SAT solvers, extended with the same "c var" comment conventions the rest
// of this module uses for parameters and named variables. Grounded on
// bal/cnf/io/cnfdimacs.hpp's DimacsStreamReader/DimacsStreamWriter.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/literal"
	"github.com/vsklad/cgen-sub001/varray"
)

// ParseError reports a malformed input line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

// Write renders f in DIMACS order: parameters, named variables, the "p cnf"
// header, then one line per clause - matching DimacsStreamWriter.write,
// which emits parameters and variables before the header.
func Write(w io.Writer, f *cnf.Formula) error {
	bw := bufio.NewWriter(w)

	for _, key := range f.SortedParameterKeys() {
		if key == "writer" {
			continue
		}
		fmt.Fprintf(bw, "c var .%s = { %s }\n", key, f.Parameters()[key])
	}
	if !f.IsEmpty() {
		order := "right-left"
		if f.IsCompareLeftRight() {
			order = "left-right"
		}
		fmt.Fprintf(bw, "c var .writer = { is_sorted: 1, literals_order: \"ascending\", literals_compare_order: %q }\n", order)
	}

	for _, line := range f.FormatNamedVariableLines() {
		fmt.Fprintln(bw, line)
	}

	fmt.Fprintf(bw, "p cnf %d %d\n", f.VariablesSize(), f.ClausesSize())

	var fail error
	f.Clauses(func(_ int, clause []literal.Literal) bool {
		parts := make([]string, 0, len(clause)+1)
		for _, l := range clause {
			parts = append(parts, strconv.FormatInt(int64(literal.SignedDecode(l)), 10))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			fail = err
			return false
		}
		return true
	})
	if fail != nil {
		return fail
	}
	return bw.Flush()
}

// Read parses a DIMACS stream into a new CNF formula.
func Read(r io.Reader) (*cnf.Formula, error) {
	f := cnf.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	headerSeen := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "c var ."):
			if err := readParameterLine(f, line, lineNo); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "c var "):
			if err := readNamedVariableLine(f, line, lineNo); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "c"):
			// unrecognized comment, ignored
		case strings.HasPrefix(line, "p"):
			if headerSeen {
				return nil, &ParseError{Line: lineNo, Msg: "duplicate header line"}
			}
			if err := readHeaderLine(f, line, lineNo); err != nil {
				return nil, err
			}
			headerSeen = true
		default:
			if !headerSeen {
				return nil, &ParseError{Line: lineNo, Msg: "clause line before header"}
			}
			if err := readClauseLine(f, line, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, &ParseError{Line: lineNo, Msg: "missing \"p cnf\" header"}
	}
	return f, nil
}

func readHeaderLine(f *cnf.Formula, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return &ParseError{Line: lineNo, Msg: "malformed \"p cnf\" header"}
	}
	varsCount, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return &ParseError{Line: lineNo, Msg: "malformed variable count"}
	}
	if _, err := strconv.ParseUint(fields[3], 10, 32); err != nil {
		return &ParseError{Line: lineNo, Msg: "malformed clause count"}
	}
	f.Reset(literal.VariableID(varsCount))
	return nil
}

func readClauseLine(f *cnf.Formula, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return &ParseError{Line: lineNo, Msg: "clause not terminated by 0"}
	}
	lits := make([]literal.Literal, 0, len(fields)-1)
	for _, tok := range fields[:len(fields)-1] {
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil || n == 0 {
			return &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid literal %q", tok)}
		}
		lits = append(lits, literal.SignedEncode(int32(n)))
	}
	if err := f.AppendClause(lits...); err != nil {
		return fmt.Errorf("dimacs: line %d: %w", lineNo, err)
	}
	return nil
}

// "c var .key = { name: value, name: value, ... }"
func readParameterLine(f *cnf.Formula, line string, lineNo int) error {
	rest := strings.TrimPrefix(line, "c var .")
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return &ParseError{Line: lineNo, Msg: "malformed parameter line"}
	}
	key := strings.TrimSpace(rest[:eq])
	body := strings.TrimSpace(rest[eq+1:])
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")
	for _, item := range splitTopLevel(body, ',') {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		colon := strings.Index(item, ":")
		if colon < 0 {
			return &ParseError{Line: lineNo, Msg: fmt.Sprintf("malformed parameter entry %q", item)}
		}
		name := strings.TrimSpace(item[:colon])
		value := strings.TrimSpace(item[colon+1:])
		if unquoted, err := strconv.Unquote(value); err == nil {
			f.AddParameter(key, name, unquoted, true)
		} else {
			f.AddParameter(key, name, value, false)
		}
	}
	return nil
}

// "c var name = {lit,lit,...}"
func readNamedVariableLine(f *cnf.Formula, line string, lineNo int) error {
	rest := strings.TrimPrefix(line, "c var ")
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return &ParseError{Line: lineNo, Msg: "malformed named variable line"}
	}
	name := strings.TrimSpace(rest[:eq])
	body := strings.TrimSpace(rest[eq+1:])
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")
	tokens := splitTopLevel(body, ',')
	value := make(varray.Array, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		l, err := literal.Parse(tok)
		if err != nil {
			return &ParseError{Line: lineNo, Msg: err.Error()}
		}
		value = append(value, l)
	}
	f.AddNamedVariable(name, value)
	return nil
}

// splitTopLevel splits s on sep, ignoring occurrences inside double quotes.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var b strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == sep && !inQuotes:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	parts = append(parts, b.String())
	return parts
}
