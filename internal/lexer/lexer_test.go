package lexer

import "testing"

func TestTransitionsStayInRange(t *testing.T) {
	for s := State(0); s < NStates; s++ {
		for c := 0; c < 256; c++ {
			next := NextState(s, byte(c))
			if next < 0 || next >= NStates {
				t.Fatalf("state %d on byte %#x yields out-of-range state %d", s, c, next)
			}
		}
	}
}

func TestGeneralTransitions(t *testing.T) {
	tests := []struct {
		from State
		c    byte
		want State
	}{
		{Begin, '<', ElemBegin},
		{Begin, ' ', Whitespace},
		{Begin, 'f', InnerText},
		{Begin, '&', Entity},
		{Whitespace, '\t', Whitespace},
		{Whitespace, 'x', InnerText},
		{Whitespace, '&', Entity},
		{End, 'x', End},
		{End, '<', End},
		{Error, '<', ElemBegin},
		{Error, '>', Whitespace},
		{Error, 'q', Error},
	}

	for i, tt := range tests {
		if got := NextState(tt.from, tt.c); got != tt.want {
			t.Errorf("tests[%d]: %d on %q = %d, want %d", i, tt.from, tt.c, got, tt.want)
		}
	}
}

func TestElementTransitions(t *testing.T) {
	tests := []struct {
		from State
		c    byte
		want State
	}{
		{ElemBegin, 'a', Elem},
		{ElemBegin, 'A', Elem},
		{ElemBegin, '5', Elem},
		{ElemBegin, '?', Elem},
		{ElemBegin, ':', Elem},
		{ElemBegin, '!', SpecialElem},
		{ElemBegin, '/', CloseElemBegin},
		{ElemBegin, ' ', ElemBegin},
		{ElemBegin, '$', Error},
		{Elem, 'b', Elem},
		{Elem, ' ', ElemWS},
		{Elem, '/', CloseElemSelf},
		{Elem, '>', ElemEnd},
		{ElemWS, 'k', AttrKey},
		{ElemWS, '=', Error},
		{ElemWS, '>', ElemEnd},
		{CloseElemBegin, 'a', CloseElem},
		{CloseElem, '>', CloseElemEnd},
		{CloseElem, ' ', CloseElemSkip},
		{CloseElemSkip, 'x', CloseElemSkip},
		{CloseElemSkip, '>', CloseElemEnd},
		{CloseElemSelf, '>', ElemEnd},
		{CloseElemSelf, ' ', CloseElemSelf},
	}

	for i, tt := range tests {
		if got := NextState(tt.from, tt.c); got != tt.want {
			t.Errorf("tests[%d]: %d on %q = %d, want %d", i, tt.from, tt.c, got, tt.want)
		}
	}
}

func TestAttributeTransitions(t *testing.T) {
	tests := []struct {
		from State
		c    byte
		want State
	}{
		{AttrKey, '=', AttrEquals},
		{AttrKey, ' ', AttrWS},
		{AttrKey, '>', ElemEnd},
		{AttrKey, '"', Error},
		{AttrWS, '=', AttrEquals},
		{AttrWS, 'x', AttrKey},
		{AttrEquals, '"', AttrDoubleQuoteOpen},
		{AttrEquals, '\'', AttrSingleQuoteOpen},
		{AttrEquals, 'v', AttrValue},
		{AttrEquals, '&', Entity},
		{AttrEquals, '`', Error},
		{AttrValue, ' ', ElemWS},
		{AttrValue, '>', ElemEnd},
		{AttrValue, '=', AttrValue}, // '=' in unquoted values is tolerated
		{AttrValue, '&', Entity},
		{AttrSingleQuoteOpen, '\'', ElemWS},
		{AttrSingleQuoteValue, '\'', ElemWS},
		{AttrSingleQuoteValue, '>', AttrSingleQuoteValue},
		{AttrDoubleQuoteOpen, '"', ElemWS},
		{AttrDoubleQuoteValue, '"', ElemWS},
		{AttrDoubleQuoteValue, '&', Entity},
	}

	for i, tt := range tests {
		if got := NextState(tt.from, tt.c); got != tt.want {
			t.Errorf("tests[%d]: %d on %q = %d, want %d", i, tt.from, tt.c, got, tt.want)
		}
	}
}

func TestEntityTransitions(t *testing.T) {
	tests := []struct {
		from State
		c    byte
		want State
	}{
		{Entity, 'a', Entity},
		{Entity, 'Z', Entity},
		{Entity, '#', Entity},
		{Entity, '7', Entity},
		{Entity, ';', EntityEnd},
		{Entity, ' ', EntityEndDirty},
		{Entity, '<', EntityEndDirty},
		{Entity, '&', EntityEndDirty},
	}

	for i, tt := range tests {
		if got := NextState(tt.from, tt.c); got != tt.want {
			t.Errorf("tests[%d]: %d on %q = %d, want %d", i, tt.from, tt.c, got, tt.want)
		}
	}
}

func TestScriptTransitions(t *testing.T) {
	tests := []struct {
		from State
		c    byte
		want State
	}{
		{Script, '\'', ScriptSingleQuoteString},
		{Script, '"', ScriptDoubleQuoteString},
		{Script, '<', ScriptLT},
		{Script, '/', ScriptCommentBegin},
		{Script, 'x', Script},
		{ScriptSingleQuoteString, '\\', ScriptSingleQuoteStringEscape},
		{ScriptSingleQuoteStringEscape, '\'', ScriptSingleQuoteString},
		{ScriptDoubleQuoteString, '"', Script},
		{ScriptDoubleQuoteString, '<', ScriptDoubleQuoteString},
		{ScriptCommentBegin, '/', ScriptSingleComment},
		{ScriptCommentBegin, '*', ScriptMultiComment},
		{ScriptSingleComment, '\n', Script},
		{ScriptSingleComment, '<', ScriptLT},
		{ScriptMultiComment, '*', ScriptMultiCommentEnd},
		{ScriptMultiCommentEnd, '/', Script},
		{ScriptMultiCommentEnd, 'x', ScriptMultiComment},
		{ScriptLT, '/', ScriptSolidus},
		{ScriptLT, 'b', Script},
		{ScriptSolidus, 's', ScriptS},
		{ScriptSolidus, 'S', ScriptS},
		{ScriptS, 'c', ScriptC},
		{ScriptC, 'r', ScriptR},
		{ScriptR, 'i', ScriptI},
		{ScriptI, 'p', ScriptP},
		{ScriptP, 't', ScriptT},
		{ScriptT, '>', ElemEnd},
		{ScriptT, ' ', ScriptT},
		{ScriptT, 'x', Script},
	}

	for i, tt := range tests {
		if got := NextState(tt.from, tt.c); got != tt.want {
			t.Errorf("tests[%d]: %d on %q = %d, want %d", i, tt.from, tt.c, got, tt.want)
		}
	}
}

func TestRecognizerSequences(t *testing.T) {
	// Walk full byte sequences through the table.
	walk := func(from State, input string) State {
		s := from
		for i := 0; i < len(input); i++ {
			s = NextState(s, input[i])
		}
		return s
	}

	if got := walk(ElemBegin, "!DOCTYPE"); got != DoctypeE {
		t.Errorf("doctype recognizer ends in %d, want %d", got, DoctypeE)
	}
	if got := walk(ElemBegin, "!doctype"); got != DoctypeE {
		t.Errorf("lowercase doctype recognizer ends in %d, want %d", got, DoctypeE)
	}
	if got := walk(ElemBegin, "![CDATA["); got != CDataLBracket2 {
		t.Errorf("CDATA recognizer ends in %d, want %d", got, CDataLBracket2)
	}
	if got := walk(Script, "</script"); got != ScriptT {
		t.Errorf("script close recognizer ends in %d, want %d", got, ScriptT)
	}
	if got := walk(Script, "</SCRIPT"); got != ScriptT {
		t.Errorf("uppercase script close recognizer ends in %d, want %d", got, ScriptT)
	}
}
