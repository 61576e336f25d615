package htmltok

import "github.com/cwbudde/go-htmltok/pkg/tag"

// EventHandler receives the semantic events of a parse. Callbacks run
// synchronously from inside the main loop; the fragment slices they are
// handed alias parser-owned storage and are valid only for the duration of
// the call. A handler that needs a fragment afterwards must copy it.
//
// A handler must not feed input back into the same Parser from within a
// callback. Driving a different Parser is fine.
type EventHandler interface {
	DocumentBegin(p *Parser)
	DocumentEnd(p *Parser)

	ElementOpen(p *Parser, t tag.Tag, name []byte)
	ElementClose(p *Parser, t tag.Tag, name []byte)

	// Attribute reports one key/value pair. A nil value signals a void
	// attribute (a key with no '=value' part).
	Attribute(p *Parser, key, value []byte)

	Comment(p *Parser, text []byte)
	// InnerText reports one whitespace-delimited word at a time.
	InnerText(p *Parser, text []byte)
	CDATA(p *Parser, text []byte)
	Doctype(p *Parser, text []byte)
	Script(p *Parser, body []byte)

	Error(p *Parser, kind ErrorKind)
}

// DefaultHandler is a no-op implementation of EventHandler. Embed it to
// implement only the events of interest.
type DefaultHandler struct{}

func (DefaultHandler) DocumentBegin(*Parser)                 {}
func (DefaultHandler) DocumentEnd(*Parser)                   {}
func (DefaultHandler) ElementOpen(*Parser, tag.Tag, []byte)  {}
func (DefaultHandler) ElementClose(*Parser, tag.Tag, []byte) {}
func (DefaultHandler) Attribute(*Parser, []byte, []byte)     {}
func (DefaultHandler) Comment(*Parser, []byte)               {}
func (DefaultHandler) InnerText(*Parser, []byte)             {}
func (DefaultHandler) CDATA(*Parser, []byte)                 {}
func (DefaultHandler) Doctype(*Parser, []byte)               {}
func (DefaultHandler) Script(*Parser, []byte)                {}
func (DefaultHandler) Error(*Parser, ErrorKind)              {}
