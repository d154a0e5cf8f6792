package yal

import "strconv"

// parser walks a flat token stream one MODULE block at a time (§6's
// grammar). It never backtracks: each block's keywords appear in a fixed
// order, so a single lookahead token is always enough to decide what
// comes next.
type parser struct {
	toks []token
	pos  int
}

func newParser(toks []token) *parser { return &parser{toks: toks} }

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() (token, bool) {
	if p.atEOF() {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, error) {
	tok, ok := p.peek()
	if !ok {
		return token{}, errUnexpectedEOF
	}
	p.pos++
	return tok, nil
}

// expectWord consumes the next token and requires it to equal word
// (case-sensitive, matching the grammar's literal keywords).
func (p *parser) expectWord(word string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.text != word {
		return parseErrorf(tok.line, "expected %q, got %q", word, tok.text)
	}
	return nil
}

func (p *parser) expectSemi() error { return p.expectWord(";") }

// parseModules consumes every MODULE...ENDMODULE; block until EOF,
// returning one moduleTemplate per block and the PARENT module's network
// entries (there must be exactly one PARENT module; §7's "empty parent
// network" is reported by the caller once all blocks are parsed).
func (p *parser) parseModules() ([]moduleTemplate, []networkEntry, error) {
	var templates []moduleTemplate
	var network []networkEntry
	haveParent := false

	for !p.atEOF() {
		tmpl, entries, isParent, err := p.parseModuleBlock()
		if err != nil {
			return nil, nil, err
		}
		templates = append(templates, tmpl)
		if isParent {
			if haveParent {
				return nil, nil, parseErrorf(0, "more than one TYPE PARENT module")
			}
			haveParent = true
			network = entries
		}
	}
	if !haveParent {
		return nil, nil, errNoParentModule
	}
	return templates, network, nil
}

func (p *parser) parseModuleBlock() (moduleTemplate, []networkEntry, bool, error) {
	if err := p.expectWord("MODULE"); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	nameTok, err := p.next()
	if err != nil {
		return moduleTemplate{}, nil, false, err
	}
	if err := p.expectSemi(); err != nil {
		return moduleTemplate{}, nil, false, err
	}

	if err := p.expectWord("TYPE"); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	typeTok, err := p.next()
	if err != nil {
		return moduleTemplate{}, nil, false, err
	}
	isParent := typeTok.text == "PARENT"
	if err := p.expectSemi(); err != nil {
		return moduleTemplate{}, nil, false, err
	}

	if err := p.expectWord("DIMENSIONS"); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	xs, ys, err := p.parseDimensions()
	if err != nil {
		return moduleTemplate{}, nil, false, err
	}

	if err := p.expectWord("IOLIST"); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	if err := p.expectSemi(); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	pins, err := p.parseIOList()
	if err != nil {
		return moduleTemplate{}, nil, false, err
	}

	var network []networkEntry
	if tok, ok := p.peek(); ok && tok.text == "NETWORK" {
		network, err = p.parseNetwork()
		if err != nil {
			return moduleTemplate{}, nil, false, err
		}
	}

	if err := p.expectWord("ENDMODULE"); err != nil {
		return moduleTemplate{}, nil, false, err
	}
	if err := p.expectSemi(); err != nil {
		return moduleTemplate{}, nil, false, err
	}

	w, h := span(xs), span(ys)
	tmpl := moduleTemplate{name: nameTok.text, parent: isParent, width: w, height: h, pins: pins}
	return tmpl, network, isParent, nil
}

// parseDimensions reads "x1 y1 x2 y2 ... ;" — pairs of integers up to the
// terminating semicolon.
func (p *parser) parseDimensions() (xs, ys []int32, err error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, nil, errUnexpectedEOF
		}
		if tok.text == ";" {
			p.pos++
			return xs, ys, nil
		}
		x, err := parseInt(tok)
		if err != nil {
			return nil, nil, err
		}
		p.pos++
		yTok, err := p.next()
		if err != nil {
			return nil, nil, err
		}
		y, err := parseInt(yTok)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
}

// parseIOList reads zero or more signal lines until ENDIOLIST;. Each line
// is "name TYPE x y w LAYER [CURRENT c] [VOLTAGE v];" — only name, x, y
// are retained (module.Pin carries no electrical attributes).
func (p *parser) parseIOList() ([]pin, error) {
	var pins []pin
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, errUnexpectedEOF
		}
		if tok.text == "ENDIOLIST" {
			p.pos++
			if err := p.expectSemi(); err != nil {
				return nil, err
			}
			return pins, nil
		}
		sigName := tok
		p.pos++
		if _, err := p.next(); err != nil { // terminal type, unused
			return nil, err
		}
		xTok, err := p.next()
		if err != nil {
			return nil, err
		}
		yTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if _, err := p.next(); err != nil { // width, unused
			return nil, err
		}
		if _, err := p.next(); err != nil { // layer type, unused
			return nil, err
		}
		// Optional CURRENT c / VOLTAGE v, each consumed as a keyword+value pair.
		for {
			next, ok := p.peek()
			if !ok {
				return nil, errUnexpectedEOF
			}
			if next.text != "CURRENT" && next.text != "VOLTAGE" {
				break
			}
			p.pos++
			if _, err := p.next(); err != nil {
				return nil, err
			}
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		x, err := parseInt(xTok)
		if err != nil {
			return nil, err
		}
		y, err := parseInt(yTok)
		if err != nil {
			return nil, err
		}
		pins = append(pins, pin{name: sigName.text, x: x, y: y})
	}
}

// parseNetwork reads "NETWORK; inst_name module_name sig... ; ... ENDNETWORK;".
func (p *parser) parseNetwork() ([]networkEntry, error) {
	if err := p.expectWord("NETWORK"); err != nil {
		return nil, err
	}
	if err := p.expectSemi(); err != nil {
		return nil, err
	}
	var entries []networkEntry
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, errUnexpectedEOF
		}
		if tok.text == "ENDNETWORK" {
			p.pos++
			if err := p.expectSemi(); err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, errEmptyParentNetwork
			}
			return entries, nil
		}
		instTok, err := p.next()
		if err != nil {
			return nil, err
		}
		modTok, err := p.next()
		if err != nil {
			return nil, err
		}
		var sigs []string
		for {
			sigTok, ok := p.peek()
			if !ok {
				return nil, errUnexpectedEOF
			}
			if sigTok.text == ";" {
				p.pos++
				break
			}
			sigs = append(sigs, sigTok.text)
			p.pos++
		}
		entries = append(entries, networkEntry{instanceName: instTok.text, moduleName: modTok.text, signals: sigs})
	}
}

func parseInt(tok token) (int32, error) {
	v, err := strconv.ParseInt(tok.text, 10, 32)
	if err != nil {
		return 0, parseErrorf(tok.line, "expected integer, got %q", tok.text)
	}
	return int32(v), nil
}

// span returns max(vs) - min(vs), or -1 for an empty slice (mirroring the
// original C++ Module::span's documented edge case).
func span(vs []int32) int32 {
	if len(vs) == 0 {
		return -1
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}
