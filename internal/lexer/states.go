// Package lexer holds the byte-level state machine of the tokenizer: a
// transition table of NStates x 256 entries constructed at process start
// from the declarative rule list in table.go. The lexer itself carries no
// other state; feeding it one byte at a time from the outside yields the
// next state per lookup.
package lexer

// State is a node of the lexer FSM.
type State int

// The state set partitions the HTML grammar. Values are dense and start at
// zero so they can index the transition tables directly.
const (
	// General
	Begin State = iota
	End
	Whitespace
	Error

	// Element open
	ElemBegin
	Elem
	ElemEnd
	ElemWS

	// Element close
	CloseElemBegin
	CloseElem
	CloseElemSkip
	CloseElemEnd
	CloseElemSelf

	// After "<!"; leads to doctype, comment or CDATA
	SpecialElem

	// Attributes
	AttrKey
	AttrWS
	AttrEquals
	AttrSingleQuoteOpen
	AttrSingleQuoteValue
	AttrDoubleQuoteOpen
	AttrDoubleQuoteValue
	AttrValue

	InnerText

	// Doctype letter-by-letter recognizer
	DoctypeD
	DoctypeO
	DoctypeC
	DoctypeT
	DoctypeY
	DoctypeP
	DoctypeE
	DoctypeDeclaration

	// Comments
	CommentBegin
	Comment
	CommentEndDash1
	CommentEndDash2

	// CDATA recognizer and body
	CDataLBracket1
	CDataC
	CDataD
	CDataA
	CDataT
	CDataA2
	CDataLBracket2
	CData
	CDataRBracket1
	CDataRBracket2

	// Character references
	Entity
	EntityEnd
	EntityEndDirty

	// Inside <script> elements
	Script
	ScriptSingleQuoteString
	ScriptSingleQuoteStringEscape
	ScriptDoubleQuoteString
	ScriptDoubleQuoteStringEscape
	ScriptCommentBegin
	ScriptSingleComment
	ScriptMultiComment
	ScriptMultiCommentEnd
	ScriptLT
	ScriptSolidus
	ScriptS
	ScriptC
	ScriptR
	ScriptI
	ScriptP
	ScriptT

	// NStates is the number of lexer states.
	NStates
)
