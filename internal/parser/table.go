package parser

import "github.com/cwbudde/go-htmltok/internal/lexer"

// table[prev][next] holds the ordered action pair for a lexer transition.
// Cells not covered by any rule stay {None, None}.
var table [lexer.NStates][lexer.NStates][2]Action

// Actions returns the action pair for the transition prev -> next.
func Actions(prev, next lexer.State) [2]Action {
	return table[prev][next]
}

// Rules are written with wildcard and negation matchers like the FSM rule
// files they derive from. A more specific rule always wins over a more
// general one regardless of ordering: exact beats negation beats wildcard,
// with the previous-state part weighing more than the next-state part.

type pattern struct {
	kind int // 0 wildcard, 1 negation, 2 exact
	s    lexer.State
}

func any() pattern { return pattern{kind: 0} }

func not(s lexer.State) pattern { return pattern{kind: 1, s: s} }

func is(s lexer.State) pattern { return pattern{kind: 2, s: s} }

func (p pattern) matches(s lexer.State) bool {
	switch p.kind {
	case 1:
		return s != p.s
	case 2:
		return s == p.s
	}
	return true
}

// score holds the specificity of the rule that filled each cell; -1 marks
// an untouched cell.
var score [lexer.NStates][lexer.NStates]int

func rule(from, to pattern, actions ...Action) {
	sc := from.kind*3 + to.kind
	var cell [2]Action
	copy(cell[:], actions)
	for p := lexer.State(0); p < lexer.NStates; p++ {
		if !from.matches(p) {
			continue
		}
		for n := lexer.State(0); n < lexer.NStates; n++ {
			if !to.matches(n) {
				continue
			}
			if sc >= score[p][n] {
				score[p][n] = sc
				table[p][n] = cell
			}
		}
	}
}

func init() {
	for p := range score {
		for n := range score[p] {
			score[p][n] = -1
		}
	}

	// Generalized transitions
	rule(not(lexer.Error), is(lexer.Error), Error)

	// Document start. Entering inner text or an entity right away also
	// needs the token machinery started.
	rule(is(lexer.Begin), not(lexer.Begin), DocumentBegin)
	rule(is(lexer.Begin), is(lexer.InnerText), DocumentBegin, TokenBegin)
	rule(is(lexer.Begin), is(lexer.Entity), DocumentBegin, InnerTextEntityBegin)

	// Transitions that begin a token
	rule(not(lexer.Elem), is(lexer.Elem), TokenBegin)
	rule(not(lexer.CloseElem), is(lexer.CloseElem), TokenBegin)
	rule(not(lexer.AttrKey), is(lexer.AttrKey), TokenBegin)
	rule(not(lexer.AttrValue), is(lexer.AttrValue), TokenBegin)
	rule(not(lexer.AttrSingleQuoteValue), is(lexer.AttrSingleQuoteValue), TokenBegin)
	rule(not(lexer.AttrDoubleQuoteValue), is(lexer.AttrDoubleQuoteValue), TokenBegin)
	rule(not(lexer.InnerText), is(lexer.InnerText), TokenBegin)
	rule(is(lexer.CommentBegin), is(lexer.Comment), TokenBegin)
	rule(is(lexer.DoctypeE), is(lexer.DoctypeDeclaration), TokenBegin)
	rule(is(lexer.CDataLBracket2), is(lexer.CData), TokenBegin)
	rule(is(lexer.CData), is(lexer.CDataRBracket1), TokenEnd)

	// Entities
	rule(not(lexer.Entity), is(lexer.Entity), EntityBegin)
	rule(is(lexer.Whitespace), is(lexer.Entity), InnerTextEntityBegin)
	rule(is(lexer.InnerText), is(lexer.Entity), InnerTextEntityBegin)
	rule(is(lexer.ElemEnd), is(lexer.Entity), InnerTextEntityBegin)

	// Attribute key
	rule(is(lexer.AttrKey), is(lexer.AttrWS), AttributeKey)
	rule(is(lexer.AttrKey), is(lexer.AttrEquals), AttributeKey)

	// Attribute key without value
	rule(is(lexer.AttrWS), is(lexer.AttrKey), AttributeVoid, TokenBegin)
	rule(is(lexer.AttrWS), is(lexer.ElemEnd), AttributeVoid, ElementEnd)
	rule(is(lexer.AttrWS), is(lexer.CloseElemSelf), AttributeVoid)
	rule(is(lexer.AttrKey), is(lexer.ElemEnd), AttributeVoid, ElementEnd)
	rule(is(lexer.AttrKey), is(lexer.CloseElemSelf), AttributeVoid)
	rule(is(lexer.AttrEquals), is(lexer.ElemEnd), AttributeVoid, ElementEnd)
	rule(is(lexer.AttrEquals), is(lexer.CloseElemSelf), AttributeVoid)

	// Unquoted attribute value
	rule(is(lexer.AttrValue), is(lexer.ElemWS), Attribute)
	rule(is(lexer.AttrValue), is(lexer.ElemEnd), Attribute, ElementEnd)
	rule(is(lexer.AttrValue), is(lexer.CloseElemSelf), Attribute)

	// Quoted attribute values, including the empty ones
	rule(is(lexer.AttrSingleQuoteValue), is(lexer.ElemWS), Attribute)
	rule(is(lexer.AttrDoubleQuoteValue), is(lexer.ElemWS), Attribute)
	rule(is(lexer.AttrSingleQuoteOpen), is(lexer.ElemWS), TokenBegin, Attribute)
	rule(is(lexer.AttrDoubleQuoteOpen), is(lexer.ElemWS), TokenBegin, Attribute)

	// Opening tag
	rule(is(lexer.Elem), is(lexer.ElemWS), ElementOpen)
	rule(is(lexer.Elem), is(lexer.ElemEnd), ElementOpen, ElementEnd)
	rule(is(lexer.Elem), is(lexer.CloseElemSelf), ElementOpen)
	rule(not(lexer.CloseElemSelf), is(lexer.ElemEnd), ElementEnd)
	rule(is(lexer.CloseElemSelf), is(lexer.ElemEnd), VoidElementEnd)

	// Closing tag
	rule(is(lexer.CloseElem), is(lexer.CloseElemEnd), ElementClose)
	rule(is(lexer.CloseElem), is(lexer.CloseElemSkip), ElementClose)

	// Inner text
	rule(is(lexer.InnerText), any(), InnerText, Text)
	rule(is(lexer.InnerText), is(lexer.InnerText))
	rule(is(lexer.InnerText), is(lexer.Whitespace), InnerText)

	// Comment, doctype, CDATA
	rule(is(lexer.CommentEndDash2), is(lexer.ElemEnd), Comment)
	rule(is(lexer.DoctypeDeclaration), is(lexer.ElemEnd), Doctype)
	rule(is(lexer.CDataRBracket2), is(lexer.ElemEnd), CDATA)

	// Entity completion, clean and dirty
	rule(is(lexer.Entity), is(lexer.EntityEnd), Entity)
	rule(is(lexer.Entity), is(lexer.EntityEndDirty), Entity)

	// Script element
	rule(is(lexer.Script), is(lexer.ScriptLT), TokenEnd)
	rule(is(lexer.ScriptSingleComment), is(lexer.ScriptLT), TokenEnd)
	rule(is(lexer.ScriptT), is(lexer.ElemEnd), ScriptEnd)
}
