package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/token"
)

type toonLine struct {
	n      int // 0-based physical line number
	indent int
	text   string
}

type toonParser struct {
	lines []toonLine
	i     int
}

func splitToonLines(d []byte) []toonLine {
	raw := strings.Split(string(d), "\n")
	res := make([]toonLine, len(raw))
	for i, ln := range raw {
		ln = strings.TrimSuffix(ln, "\r")
		ind := 0
		for ind < len(ln) && ln[ind] == ' ' {
			ind++
		}
		res[i] = toonLine{n: i, indent: ind, text: strings.TrimSpace(ln[ind:])}
	}
	return res
}

func parseToon(d []byte) (*ir.Node, error) {
	p := &toonParser{lines: splitToonLines(d)}
	root := &ir.Node{Type: ir.ObjectType}
	p.skipBlank()
	for !p.eof() {
		ln := p.cur()
		if ln.indent != 0 {
			return nil, fmt.Errorf("%w: unexpected indentation at line %d", ErrParse, ln.n+1)
		}
		key, val, err := p.parseEntity(0)
		if err != nil {
			return nil, err
		}
		ir.Set(root, key, val)
		p.skipBlank()
	}
	return root, nil
}

func (p *toonParser) eof() bool {
	return p.i >= len(p.lines)
}

func (p *toonParser) cur() *toonLine {
	return &p.lines[p.i]
}

func (p *toonParser) skipBlank() {
	for !p.eof() && p.cur().text == "" {
		p.i++
	}
}

// isRow reports whether the current line can be a data row of an entity at
// the given indent.
func (p *toonParser) isRow(indent int) bool {
	if p.eof() {
		return false
	}
	ln := p.cur()
	if ln.text == "" || ln.indent < indent {
		return false
	}
	return !token.IsHeaderLine(ln.text)
}

func (p *toonParser) parseEntity(indent int) (string, *ir.Node, error) {
	ln := p.cur()
	h, err := token.ScanHeader(ln.text)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w at line %d", ErrParse, err, ln.n+1)
	}
	p.i++
	switch h.Kind {
	case token.HeaderTable:
		val, err := p.parseTable(h, indent, ln.n)
		return h.Name, val, err
	case token.HeaderList:
		val, err := p.parseList(h, indent, ln.n)
		return h.Name, val, err
	case token.HeaderRecord:
		val, err := p.parseRecord(h, indent, ln.n)
		return h.Name, val, err
	default:
		val, err := p.parseBare(h, indent, ln.n)
		return h.Name, val, err
	}
}

func (p *toonParser) parseTable(h *token.Header, indent, hline int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for r := 0; r < h.Count; r++ {
		if !p.isRow(indent) {
			return nil, fmt.Errorf("%w: entity %q declares %d rows, got %d (line %d)",
				ErrRowCountMismatch, h.Name, h.Count, r, hline+1)
		}
		row, err := p.parseRow(h, p.cur())
		if err != nil {
			return nil, err
		}
		row.Parent = arr
		row.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, row)
		p.i++
	}
	if p.isRow(indent) {
		return nil, fmt.Errorf("%w: entity %q declares %d rows, got more (line %d)",
			ErrRowCountMismatch, h.Name, h.Count, p.cur().n+1)
	}
	return arr, nil
}

func (p *toonParser) parseRow(h *token.Header, ln *toonLine) (*ir.Node, error) {
	cells, err := token.SplitCells(ln.text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w in entity %q at line %d", ErrParse, err, h.Name, ln.n+1)
	}
	if len(cells) != len(h.Fields) {
		return nil, fmt.Errorf("%w: entity %q has %d fields, row at line %d has %d cells",
			ErrFieldCountMismatch, h.Name, len(h.Fields), ln.n+1, len(cells))
	}
	obj := &ir.Node{Type: ir.ObjectType}
	kvs := make([]ir.KeyVal, len(cells))
	for i, cell := range cells {
		val, err := p.decodeCell(cell, h.Name, ln.n)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(h.Fields[i]), Val: val}
	}
	return ir.FromKeyValsAt(obj, kvs), nil
}

func (p *toonParser) parseList(h *token.Header, indent, hline int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for r := 0; r < h.Count; r++ {
		if !p.isRow(indent) {
			return nil, fmt.Errorf("%w: entity %q declares %d items, got %d (line %d)",
				ErrRowCountMismatch, h.Name, h.Count, r, hline+1)
		}
		ln := p.cur()
		cells, err := token.SplitCells(ln.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w in entity %q at line %d", ErrParse, err, h.Name, ln.n+1)
		}
		if len(cells) != 1 {
			return nil, fmt.Errorf("%w: entity %q expects one cell per item, line %d has %d",
				ErrFieldCountMismatch, h.Name, ln.n+1, len(cells))
		}
		val, err := p.decodeCell(cells[0], h.Name, ln.n)
		if err != nil {
			return nil, err
		}
		val.Parent = arr
		val.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, val)
		p.i++
	}
	if p.isRow(indent) {
		return nil, fmt.Errorf("%w: entity %q declares %d items, got more (line %d)",
			ErrRowCountMismatch, h.Name, h.Count, p.cur().n+1)
	}
	return arr, nil
}

func (p *toonParser) parseRecord(h *token.Header, indent, hline int) (*ir.Node, error) {
	if len(h.Fields) == 0 {
		return &ir.Node{Type: ir.ObjectType}, nil
	}
	if !p.isRow(indent) {
		return nil, fmt.Errorf("%w: entity %q declares a record, data row missing (line %d)",
			ErrRowCountMismatch, h.Name, hline+1)
	}
	row, err := p.parseRow(h, p.cur())
	if err != nil {
		return nil, err
	}
	p.i++
	return row, nil
}

func (p *toonParser) parseBare(h *token.Header, indent, hline int) (*ir.Node, error) {
	if h.Inline != "" {
		return p.decodeCell(h.Inline, h.Name, hline)
	}
	p.skipBlank()
	if p.eof() || p.cur().indent <= indent {
		return ir.Null(), nil
	}
	return p.parseBlock(h.Name)
}

// parseBlock parses a nested block starting at the current line, whose
// indent defines the block level. A block is an array when its lines are
// `- ` items, and an object of entities otherwise.
func (p *toonParser) parseBlock(entity string) (*ir.Node, error) {
	blockIndent := p.cur().indent
	if strings.HasPrefix(p.cur().text, "-") &&
		(p.cur().text == "-" || strings.HasPrefix(p.cur().text, "- ")) {
		return p.parseArrayBlock(entity, blockIndent)
	}
	return p.parseObjectBlock(entity, blockIndent)
}

func (p *toonParser) parseArrayBlock(entity string, blockIndent int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for {
		p.skipBlank()
		if p.eof() || p.cur().indent < blockIndent {
			return arr, nil
		}
		ln := p.cur()
		if ln.indent != blockIndent {
			return nil, fmt.Errorf("%w: bad indentation in entity %q at line %d",
				ErrParse, entity, ln.n+1)
		}
		if ln.text != "-" && !strings.HasPrefix(ln.text, "- ") {
			return nil, fmt.Errorf("%w: expected array item in entity %q at line %d",
				ErrParse, entity, ln.n+1)
		}
		rest := strings.TrimSpace(strings.TrimPrefix(ln.text, "-"))
		p.i++
		var (
			item *ir.Node
			err  error
		)
		switch rest {
		case "":
			p.skipBlank()
			if p.eof() || p.cur().indent <= blockIndent {
				item = ir.Null()
			} else if item, err = p.parseBlock(entity); err != nil {
				return nil, err
			}
		// "[]" and "{}" are the inline spellings of memberless
		// composites; string cells reading the same are quoted
		case "[]":
			item = &ir.Node{Type: ir.ArrayType}
		case "{}":
			item = &ir.Node{Type: ir.ObjectType}
		default:
			if item, err = p.decodeCell(rest, entity, ln.n); err != nil {
				return nil, err
			}
		}
		item.Parent = arr
		item.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, item)
	}
}

func (p *toonParser) parseObjectBlock(entity string, blockIndent int) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	for {
		p.skipBlank()
		if p.eof() || p.cur().indent < blockIndent {
			return obj, nil
		}
		ln := p.cur()
		if ln.indent != blockIndent {
			return nil, fmt.Errorf("%w: bad indentation in entity %q at line %d",
				ErrParse, entity, ln.n+1)
		}
		key, val, err := p.parseEntity(blockIndent)
		if err != nil {
			return nil, err
		}
		ir.Set(obj, key, val)
	}
}

// decodeCell decodes one cell using an ordered set of total decode
// attempts: null keyword, boolean keyword, numeric literal, quoted string,
// bare string.
func (p *toonParser) decodeCell(s, entity string, line int) (*ir.Node, error) {
	switch s {
	case "":
		// an empty cell is the empty string, not null
		return ir.FromString(""), nil
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if ok, isFloat := token.IsNumber(s); ok {
		if isFloat {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return ir.FromNumberLiteral(s), nil
			}
			return ir.FromFloat(f), nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ir.FromNumberLiteral(s), nil
		}
		return ir.FromInt(i), nil
	}
	if s[0] == '"' {
		v, err := token.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w in entity %q at line %d", ErrParse, err, entity, line+1)
		}
		return ir.FromString(v), nil
	}
	return ir.FromString(s), nil
}
