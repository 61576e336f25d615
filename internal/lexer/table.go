package lexer

// transitions[state][byte] gives the lexer's next state. The table is
// filled state by state: each block sets the default transition for the
// whole byte range, then the character classes, then the individual bytes,
// so later entries within a block override earlier ones.
var transitions [NStates][256]State

// NextState advances the FSM by one input byte.
func NextState(s State, c byte) State {
	return transitions[s][c]
}

type edge struct {
	to    State
	bytes string          // exact byte set, or
	class func(byte) bool // character class
}

func on(bytes string, to State) edge { return edge{to: to, bytes: bytes} }

func class(f func(byte) bool, to State) edge { return edge{to: to, class: f} }

func space(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}

func letter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }

func alnum(b byte) bool { return letter(b) || b >= '0' && b <= '9' }

// entityChar keeps digits and '#' inside the entity state so numeric
// character references survive to the decoder.
func entityChar(b byte) bool { return alnum(b) || b == '#' }

func state(from, def State, edges ...edge) {
	row := &transitions[from]
	for c := 0; c < 256; c++ {
		row[c] = def
	}
	for _, e := range edges {
		if e.class != nil {
			for c := 0; c < 256; c++ {
				if e.class(byte(c)) {
					row[c] = e.to
				}
			}
		}
		for i := 0; i < len(e.bytes); i++ {
			row[e.bytes[i]] = e.to
		}
	}
}

func init() {
	// General states. Text before the first element is lexed as inner
	// text so leading words are not swallowed.
	state(Begin, InnerText,
		class(space, Whitespace),
		on("<", ElemBegin),
		on("&", Entity))
	state(End, End) // trap state
	state(Whitespace, InnerText,
		class(space, Whitespace),
		on("<", ElemBegin),
		on("&", Entity))
	state(Error, Error,
		on("<", ElemBegin),
		on(">", Whitespace))

	// Element open. The tag-name class is permissive because many pages
	// carry malformed names.
	state(ElemBegin, Error,
		class(alnum, Elem),
		class(space, ElemBegin),
		on("?:", Elem),
		on("!", SpecialElem),
		on("/", CloseElemBegin))
	state(Elem, Error,
		class(alnum, Elem),
		class(space, ElemWS),
		on("?:", Elem),
		on("/", CloseElemSelf),
		on(">", ElemEnd))
	state(ElemWS, AttrKey,
		class(space, ElemWS),
		on("/", CloseElemSelf),
		on(">", ElemEnd),
		on("=", Error),
		on("'", Error),
		on("\"", Error))
	state(ElemEnd, InnerText,
		class(space, Whitespace),
		on("<", ElemBegin),
		on("&", Entity))

	// Element close
	state(CloseElemBegin, Error,
		class(alnum, CloseElem),
		class(space, CloseElemBegin),
		on(":?", CloseElem))
	state(CloseElem, Error,
		class(alnum, CloseElem),
		class(space, CloseElemSkip),
		on(":?", CloseElem),
		on(">", CloseElemEnd))
	// Attributes inside a closing tag are allowed but ignored.
	state(CloseElemSkip, CloseElemSkip,
		on(">", CloseElemEnd))
	state(CloseElemEnd, InnerText,
		class(space, Whitespace),
		on("<", ElemBegin))
	state(CloseElemSelf, Error,
		class(space, CloseElemSelf),
		on(">", ElemEnd))

	// Special elements beginning with <!
	state(SpecialElem, Error,
		on("Dd", DoctypeD),
		on("[", CDataLBracket1),
		on("-", CommentBegin))

	// Attributes
	state(AttrKey, AttrKey,
		class(space, AttrWS),
		on("=", AttrEquals),
		on(">", ElemEnd),
		on("/", CloseElemSelf),
		on("<", Error),
		on("'", Error),
		on("\"", Error))
	state(AttrWS, AttrKey,
		class(space, AttrWS),
		on("=", AttrEquals),
		on("/", CloseElemSelf),
		on(">", ElemEnd),
		on("<", Error),
		on("'", Error),
		on("\"", Error))
	state(AttrEquals, AttrValue,
		class(space, AttrEquals),
		on("\"", AttrDoubleQuoteOpen),
		on("'", AttrSingleQuoteOpen),
		on(">", ElemEnd),
		on("`", Error),
		on("<", Error),
		on("&", Entity))
	// '=' inside an unquoted value is tolerated; pages do it.
	state(AttrValue, AttrValue,
		class(space, ElemWS),
		on(">", ElemEnd),
		on("\"", Error),
		on("`", Error),
		on("<", Error),
		on("&", Entity))
	state(AttrSingleQuoteOpen, AttrSingleQuoteValue,
		on("'", ElemWS),
		on("&", Entity))
	state(AttrSingleQuoteValue, AttrSingleQuoteValue,
		on("&", Entity),
		on("'", ElemWS))
	state(AttrDoubleQuoteOpen, AttrDoubleQuoteValue,
		on("&", Entity),
		on("\"", ElemWS))
	state(AttrDoubleQuoteValue, AttrDoubleQuoteValue,
		on("&", Entity),
		on("\"", ElemWS))

	// Text nodes
	state(InnerText, InnerText,
		class(space, Whitespace),
		on("<", ElemBegin),
		on("&", Entity))

	// Doctype declaration, letter by letter
	state(DoctypeD, Error, on("oO", DoctypeO))
	state(DoctypeO, Error, on("cC", DoctypeC))
	state(DoctypeC, Error, on("tT", DoctypeT))
	state(DoctypeT, Error, on("yY", DoctypeY))
	state(DoctypeY, Error, on("pP", DoctypeP))
	state(DoctypeP, Error, on("eE", DoctypeE))
	state(DoctypeE, Error, class(space, DoctypeDeclaration))
	// The declaration body is handed to the consumer as-is.
	state(DoctypeDeclaration, DoctypeDeclaration,
		on(">", ElemEnd))

	// Comments
	state(CommentBegin, Error, on("-", Comment))
	state(Comment, Comment, on("-", CommentEndDash1))
	state(CommentEndDash1, Comment, on("-", CommentEndDash2))
	state(CommentEndDash2, Comment,
		on(">", ElemEnd),
		on("-", CommentEndDash2))

	// CDATA
	state(CDataLBracket1, Error, on("C", CDataC))
	state(CDataC, Error, on("D", CDataD))
	state(CDataD, Error, on("A", CDataA))
	state(CDataA, Error, on("T", CDataT))
	state(CDataT, Error, on("A", CDataA2))
	state(CDataA2, Error, on("[", CDataLBracket2))
	state(CDataLBracket2, CData, on("]", CDataRBracket1))
	state(CData, CData, on("]", CDataRBracket1))
	state(CDataRBracket1, CData, on("]", CDataRBracket2))
	state(CDataRBracket2, CData, on(">", ElemEnd))

	// Character references. A terminator other than ';' ends the entity
	// dirty: the byte must be re-read by the resumed state.
	state(Entity, EntityEndDirty,
		class(entityChar, Entity),
		on(";", EntityEnd))
	state(EntityEnd, EntityEndDirty)
	state(EntityEndDirty, EntityEndDirty)

	// Inside <script>. The rules are not a JavaScript grammar; they track
	// just enough (strings, comments, the </script> sequence) to find the
	// end of the element in wild HTML.
	state(Script, Script,
		on("'", ScriptSingleQuoteString),
		on("\"", ScriptDoubleQuoteString),
		on("<", ScriptLT),
		on("/", ScriptCommentBegin))
	state(ScriptSingleQuoteString, ScriptSingleQuoteString,
		on("\\", ScriptSingleQuoteStringEscape),
		on("'", Script))
	state(ScriptSingleQuoteStringEscape, ScriptSingleQuoteString)
	state(ScriptDoubleQuoteString, ScriptDoubleQuoteString,
		on("\\", ScriptDoubleQuoteStringEscape),
		on("\"", Script))
	state(ScriptDoubleQuoteStringEscape, ScriptDoubleQuoteString)
	state(ScriptCommentBegin, Script,
		on("/", ScriptSingleComment),
		on("*", ScriptMultiComment))
	state(ScriptSingleComment, ScriptSingleComment,
		on("\n", Script),
		on("<", ScriptLT))
	state(ScriptMultiComment, ScriptMultiComment,
		on("*", ScriptMultiCommentEnd))
	state(ScriptMultiCommentEnd, ScriptMultiComment,
		on("/", Script))

	// Closing sequence for </script>
	state(ScriptLT, Script,
		class(space, ScriptLT),
		on("/", ScriptSolidus))
	state(ScriptSolidus, Script,
		class(space, ScriptSolidus),
		on("sS", ScriptS))
	state(ScriptS, Script, on("cC", ScriptC))
	state(ScriptC, Script, on("rR", ScriptR))
	state(ScriptR, Script, on("iI", ScriptI))
	state(ScriptI, Script, on("pP", ScriptP))
	state(ScriptP, Script, on("tT", ScriptT))
	state(ScriptT, Script,
		class(space, ScriptT),
		on(">", ElemEnd))
}
