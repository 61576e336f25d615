// Package htmltok is a streaming, push-driven HTML5 tokenizer. It consumes
// byte chunks of arbitrary size and reports semantic events (element open
// and close, attributes, inner-text words, comments, CDATA, doctype, script
// bodies, errors) through a caller-supplied EventHandler. No DOM or tree is
// ever built.
//
// The tokenizer is two table-driven state machines: a byte-level lexer FSM
// (internal/lexer) and a parser FSM defined on lexer transitions
// (internal/parser). For every input byte the lexer yields the next state,
// the transition pair selects up to two action opcodes, and the dispatcher
// executes them: token bookkeeping, event callbacks and the occasional
// re-read of the current byte.
//
// Tokens that lie within a single chunk are passed to callbacks without
// copying; a token crossing a chunk boundary, or rewritten by character
// reference expansion, is accumulated in a parser-owned buffer.
package htmltok

import (
	"github.com/cwbudde/go-htmltok/internal/lexer"
	"github.com/cwbudde/go-htmltok/internal/parser"
	"github.com/cwbudde/go-htmltok/pkg/tag"
)

// Position locates the parse in the overall input: 1-based row and column
// and the byte offset within the current input slice. Row and column run
// across chunk boundaries; the offset rebinds with each chunk.
type Position struct {
	Row    int
	Col    int
	Offset int
}

// PositionBegin is the position of a fresh parser.
var PositionBegin = Position{Row: 1, Col: 1}

// Parser tokenizes a document fed to it as one slice (SetInput + Parse) or
// as a sequence of chunks (ParseChunk). A Parser must not be shared between
// goroutines. Reusing one across documents requires Reset.
type Parser struct {
	events EventHandler
	opts   Opts

	// UserData is an opaque slot for event-handler code.
	UserData any

	input []byte
	pos   Position
	st    *state
}

// New creates a ready-to-use parser with the default no-op handler.
func New(opts ...Option) *Parser {
	p := &Parser{
		events: DefaultHandler{},
		opts:   DefaultOpts,
	}
	p.Reset()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset returns the parser to its initial state so a new document can be
// fed. Handler, options and UserData are kept.
func (p *Parser) Reset() {
	p.input = nil
	p.pos = PositionBegin
	p.st = &state{
		lexState: lexer.Begin,
		endMark:  -1,
	}
	p.st.tokenBuf.Init()
	p.st.attrKeyBuf.Init()
}

// SetInput binds the input slice and rewinds the offset. Row and column
// carry over, which is what makes chunked feeding line up.
func (p *Parser) SetInput(buf []byte) {
	p.input = buf
	p.pos.Offset = 0
}

// Parse runs the main loop until the end of the current input slice.
func (p *Parser) Parse() {
	for p.pos.Offset < len(p.input) {
		c := p.input[p.pos.Offset]

		// A dispatched action may demand that the current byte be read
		// again under a rewritten lexer state.
		for {
			next := lexer.NextState(p.st.lexState, c)
			actions := parser.Actions(p.st.lexState, next)

			reread := false
			for k := 0; k < len(actions); k++ {
				if !p.dispatch(actions[k], &next) {
					reread = true
					break
				}
			}
			if reread {
				continue
			}
			p.st.lexState = next
			break
		}

		p.pos.Offset++
		if c == '\n' {
			p.pos.Row++
			p.pos.Col = 1
		} else if c != '\r' {
			p.pos.Col++
		}
	}
}

// ParseChunk binds buf as the next chunk of the document and parses it,
// carrying every piece of token state across the boundary: a token still in
// progress is flushed into the parser-owned buffer, as is a pending
// attribute key or a completed token that still views the chunk.
func (p *Parser) ParseChunk(buf []byte) {
	p.SetInput(buf)

	// Continue an in-progress token at the start of the new chunk.
	if p.st.inToken {
		p.setChunkBegin(0)
	}

	p.Parse()

	// An attribute emits as (key, value); a key lexed in this chunk must
	// survive until the value arrives.
	if p.st.attrKeySet && !p.st.attrKeyInBuf {
		p.storeAttrKey(false)
	}

	if p.st.inToken {
		// Partial token: flush what this chunk contributed.
		p.setChunkEnd(0)
		p.storeToken()
		p.setChunkBegin(0)
	} else if !p.st.stored && p.st.chunkSize > 0 {
		// Completed token still viewing the chunk: keep the bytes alive.
		p.storeToken()
		p.st.chunkStart = 0
		p.st.chunkSize = 0
	}
}

// CurrentElementTag returns the tag of the most recently opened or closed
// element. Useful inside innertext and script callbacks.
func (p *Parser) CurrentElementTag() tag.Tag {
	return p.st.lastTag
}

// LastError returns the most recent error kind reported.
func (p *Parser) LastError() ErrorKind {
	return p.st.lastError
}

// Position returns the current parse position.
func (p *Parser) Position() Position {
	return p.pos
}

// SetEventHandler replaces the event handler.
func (p *Parser) SetEventHandler(h EventHandler) {
	p.events = h
}

// SetOpts replaces the option block.
func (p *Parser) SetOpts(o Opts) {
	p.opts = o
}

// Enable sets the given flag bits.
func (p *Parser) Enable(f Flag) {
	p.opts.Flags |= f
}

// Disable clears the given flag bits.
func (p *Parser) Disable(f Flag) {
	p.opts.Flags &^= f
}

// Opts returns the current option block.
func (p *Parser) Opts() Opts {
	return p.opts
}
