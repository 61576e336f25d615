package htmltok

import (
	"github.com/cwbudde/go-htmltok/internal/lexer"
	"github.com/cwbudde/go-htmltok/internal/parser"
	"github.com/cwbudde/go-htmltok/pkg/entity"
	"github.com/cwbudde/go-htmltok/pkg/strutil"
	"github.com/cwbudde/go-htmltok/pkg/tag"
)

// state is the parser-internal state block. It tracks the lexer position in
// the grammar and materializes the current token: as long as a token lies
// inside the current input chunk it is only a (start, size) range into it;
// once it has to outlive the chunk, or gets rewritten by entity expansion,
// it moves into tokenBuf and stays there until cleared.
type state struct {
	lastTag   tag.Tag
	lastError ErrorKind

	lexState   lexer.State
	savedState lexer.State // one-slot stack for resuming after an entity

	// Current token. chunkStart/chunkSize range over the input slice;
	// stored says whether the canonical token view is tokenBuf instead.
	inToken    bool
	chunkStart int
	chunkSize  int
	stored     bool
	tokenBuf   strutil.Buffer

	// Attribute key, kept alive while the value is being lexed. The key
	// views the input chunk until a chunk boundary or entity expansion
	// forces it into attrKeyBuf.
	attrKey      []byte
	attrKeySet   bool
	attrKeyInBuf bool
	attrKeyBuf   strutil.Buffer

	// Byte offset within the current token where the '&' of an entity
	// sub-token begins, so the reference can be rewritten in place.
	entityOff int

	// Tentative token end recorded by the TokenEnd opcode, as a length of
	// the accumulated token. Used by CDATA and script bodies, where the
	// closing sequence is only confirmed several bytes later. -1 if unset.
	endMark int
}

var emptyFrag = []byte{}

// scriptName backs the element-close event that follows a script body; the
// raw close-tag bytes are consumed by the recognizer states.
var scriptName = []byte("script")

// chunkFrag returns the token range within the current input slice,
// clamped so a range carried over a rebind can never slice out of bounds.
func (p *Parser) chunkFrag() []byte {
	start, size := p.st.chunkStart, p.st.chunkSize
	if start < 0 || start > len(p.input) {
		return emptyFrag
	}
	if start+size > len(p.input) {
		size = len(p.input) - start
	}
	if size <= 0 {
		return p.input[start:start]
	}
	return p.input[start : start+size]
}

// token returns the canonical view of the current token.
func (p *Parser) token() []byte {
	if p.st.stored {
		return p.st.tokenBuf.Bytes()
	}
	return p.chunkFrag()
}

// curTokenLen is the length accumulated so far while still inside a token.
func (p *Parser) curTokenLen() int {
	live := p.pos.Offset - p.st.chunkStart
	if live < 0 {
		live = 0
	}
	if p.st.stored {
		return p.st.tokenBuf.Len() + live
	}
	return live
}

func (p *Parser) setChunkBegin(offs int) {
	p.st.chunkStart = p.pos.Offset + offs
	p.st.chunkSize = 0
	p.st.inToken = true
}

func (p *Parser) setChunkEnd(offs int) {
	size := p.pos.Offset - p.st.chunkStart + offs
	if size < 0 {
		size = 0
	}
	p.st.chunkSize = size
	p.st.inToken = false
}

// beginToken starts a fresh token at the current position plus offs.
func (p *Parser) beginToken(offs int) {
	p.setChunkBegin(offs)
	p.st.tokenBuf.Clear()
	p.st.stored = false
	p.st.endMark = -1
}

// endToken completes the current token at the current position plus offs.
// A token partially flushed into tokenBuf gets the live chunk range
// appended so the buffer holds the whole token.
func (p *Parser) endToken(offs int) {
	p.setChunkEnd(offs)
	if p.st.stored {
		p.storeToken()
	}
}

// storeToken appends the live chunk range onto tokenBuf and makes the
// buffer the canonical token view.
func (p *Parser) storeToken() {
	p.st.tokenBuf.Append(p.chunkFrag())
	p.st.stored = true
}

func (p *Parser) clearToken() {
	p.st.tokenBuf.Clear()
	p.st.chunkSize = 0
	p.st.stored = false
	p.st.inToken = false
	p.st.endMark = -1
}

// storeAttrKey copies the attribute key into its own buffer. When the key
// was sitting in tokenBuf the token is cleared, because the value may need
// the buffer next.
func (p *Parser) storeAttrKey(fromTokenBuf bool) {
	p.st.attrKeyBuf.Clear()
	p.st.attrKeyBuf.CopyFragment(0, p.st.attrKey)
	if fromTokenBuf {
		p.clearToken()
	}
	p.st.attrKey = p.st.attrKeyBuf.Bytes()
	p.st.attrKeyInBuf = true
}

func (p *Parser) clearAttrKey() {
	p.st.attrKey = nil
	p.st.attrKeySet = false
	p.st.attrKeyInBuf = false
}

// markedToken returns the current token truncated at the tentative end
// mark, for the CDATA and script events whose closing sequences trail the
// real token end.
func (p *Parser) markedToken() []byte {
	t := p.token()
	if p.st.endMark >= 0 && p.st.endMark <= len(t) {
		return t[:p.st.endMark]
	}
	return t[:0]
}

func (p *Parser) emitError(kind ErrorKind) {
	p.st.lastError = kind
	p.events.Error(p, kind)
}

// dispatch executes one parser action. It may rewrite the pending lexer
// state. A false return tells the main loop to re-read the current byte
// with the (already updated) lexer state.
func (p *Parser) dispatch(a parser.Action, next *lexer.State) bool {
	switch a {
	case parser.None:

	case parser.DocumentBegin:
		p.events.DocumentBegin(p)

	case parser.DocumentEnd:
		p.events.DocumentEnd(p)

	case parser.ElementOpen:
		p.endToken(0)
		t := p.token()
		p.st.lastTag = tag.Decode(t)
		p.events.ElementOpen(p, p.st.lastTag, t)
		p.clearToken()

	case parser.ElementClose:
		p.endToken(0)
		t := p.token()
		p.st.lastTag = tag.Decode(t)
		p.events.ElementClose(p, p.st.lastTag, t)
		p.clearToken()

	case parser.Attribute:
		p.endToken(0)
		key := p.st.attrKey
		if key == nil {
			key = emptyFrag
		}
		value := p.token()
		if value == nil {
			value = emptyFrag
		}
		p.events.Attribute(p, key, value)
		p.clearAttrKey()
		p.clearToken()

	case parser.AttributeVoid:
		p.endToken(0)
		if p.st.attrKeySet {
			p.events.Attribute(p, p.st.attrKey, nil)
		} else {
			p.events.Attribute(p, p.token(), nil)
		}
		p.clearAttrKey()
		p.clearToken()

	case parser.AttributeKey:
		p.endToken(0)
		p.st.attrKey = p.token()
		p.st.attrKeySet = true
		p.st.attrKeyInBuf = false
		if p.st.stored {
			// The value may need tokenBuf; move the key out of the way.
			p.storeAttrKey(true)
		}

	case parser.InnerText:
		p.endToken(0)
		p.events.InnerText(p, p.token())
		p.clearToken()

	case parser.Text:
		// Historical no-op companion of InnerText.

	case parser.Comment:
		p.endToken(0)
		t := p.token()
		// The raw token is "-comment--"; strip the delimiter dashes. The
		// trim happens on the materialized token because the trailing
		// dashes may already sit in tokenBuf after a chunk boundary.
		if len(t) > 3 {
			p.events.Comment(p, t[1:len(t)-2])
		}
		p.clearToken()

	case parser.CDATA:
		p.endToken(0)
		p.events.CDATA(p, p.markedToken())
		p.clearToken()

	case parser.Doctype:
		p.endToken(0)
		p.events.Doctype(p, p.token())
		p.clearToken()

	case parser.EntityBegin, parser.InnerTextEntityBegin:
		if !p.st.inToken {
			p.beginToken(0)
			p.st.entityOff = 0
		} else {
			// Flush the token prefix so the '&...' bytes land in the
			// buffer where they can be rewritten in place.
			p.setChunkEnd(0)
			p.storeToken()
			p.st.entityOff = p.st.tokenBuf.Len()
			p.setChunkBegin(0)
		}
		switch {
		case a == parser.InnerTextEntityBegin:
			p.st.savedState = lexer.InnerText
		case p.st.lexState == lexer.AttrEquals:
			p.st.savedState = lexer.AttrValue
		default:
			p.st.savedState = p.st.lexState
		}

	case parser.Entity:
		wasDirty := *next == lexer.EntityEndDirty
		// Return the lexer to the token we were parsing before the
		// entity was encountered.
		*next = p.st.savedState
		p.endToken(0)
		t := p.token()
		var name []byte
		if off := p.st.entityOff + 1; off <= len(t) {
			name = t[off:] // skip the '&'
		}
		cp, ok := entity.Decode(name)
		if ok {
			p.st.tokenBuf.Truncate(p.st.entityOff)
			p.st.tokenBuf.AppendRune(cp)
			p.st.stored = true
		} else {
			p.emitError(ErrUnknownEntity)
			// Keep the raw reference bytes in the token.
			if !p.st.stored {
				p.st.tokenBuf.Append(t)
				p.st.stored = true
			}
		}
		p.setChunkBegin(1)
		if !ok || wasDirty {
			// The terminator belongs to the resumed state; re-read it.
			p.setChunkBegin(0)
			p.st.lexState = *next
			return false
		}

	case parser.Error:
		p.emitError(ErrSyntax)
		// For some syntax errors the lexer is pushed back to its previous
		// state: the bad byte is dropped and the token continues.
		switch p.st.lexState {
		case lexer.Elem, lexer.ElemWS, lexer.AttrKey, lexer.AttrWS,
			lexer.AttrEquals, lexer.AttrValue:
			*next = p.st.lexState
		case lexer.SpecialElem:
			*next = lexer.Elem // treat <!X as a regular element
		}

	case parser.TokenBegin:
		if !p.st.inToken {
			p.beginToken(0)
		}

	case parser.TokenEnd:
		if p.st.inToken {
			p.st.endMark = p.curTokenLen()
		}

	case parser.ElementEnd:
		if p.st.lastTag == tag.Script {
			p.beginToken(1)
			*next = lexer.Script
		}

	case parser.VoidElementEnd:
		// Element end was already reported with the open event.

	case parser.ScriptEnd:
		p.endToken(0)
		p.events.Script(p, p.markedToken())
		p.clearToken()
		p.events.ElementClose(p, tag.Script, scriptName)

	case parser.ResetLexer:
		return false

	case parser.SaveToken:
		p.setChunkEnd(-1)
		p.storeToken()

	case parser.SaveLexerState:
		p.st.savedState = p.st.lexState

	case parser.RestoreLexerState:
		*next = p.st.savedState
	}
	return true
}
