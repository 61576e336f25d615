// Package tag defines the closed set of standard HTML5 element names and a
// table-driven decoder that maps a raw element-name byte sequence to its
// tag ID. Names outside the set decode to Unknown; matching is ASCII
// case-insensitive.
package tag

// Tag identifies a standard HTML5 element. Unknown covers everything else.
type Tag int

// The tag set. Script matters to the tokenizer itself (it switches the
// lexer into script mode); Style and the rest exist for consumer
// convenience.
const (
	Unknown Tag = iota
	A
	Abbr
	Acronym
	Address
	Applet
	Area
	Article
	Aside
	Audio
	B
	Base
	Basefont
	Bdi
	Bdo
	Big
	Blink
	Blockquote
	Body
	Br
	Button
	Canvas
	Caption
	Center
	Cite
	Code
	Col
	Colgroup
	Content
	Data
	Datalist
	Dd
	Del
	Details
	Dfn
	Dialog
	Dir
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Font
	Footer
	Form
	Frame
	Frameset
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hgroup
	Hr
	Html
	I
	Iframe
	Img
	Input
	Ins
	Isindex
	Kbd
	Keygen
	Label
	Legend
	Li
	Link
	Listing
	Main
	Map
	Mark
	Marquee
	Math
	Menu
	Menuitem
	Meta
	Meter
	Multicol
	Nav
	Nextid
	Nobr
	Noembed
	Noframes
	Noscript
	Object
	Ol
	Optgroup
	Option
	Output
	P
	Param
	Picture
	Plaintext
	Pre
	Progress
	Q
	Rb
	Rp
	Rt
	Rtc
	Ruby
	S
	Samp
	Script
	Search
	Section
	Select
	Shadow
	Slot
	Small
	Source
	Spacer
	Span
	Strike
	Strong
	Style
	Sub
	Summary
	Sup
	Svg
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Time
	Title
	Tr
	Track
	Tt
	U
	Ul
	Var
	Video
	Wbr
	Xmp

	nTags
)

// names is indexed by Tag. Index 0 (Unknown) holds the placeholder
// "unknown" reported by String; the decoder never matches it.
var names = [nTags]string{
	Unknown: "unknown",
	A:       "a", Abbr: "abbr", Acronym: "acronym", Address: "address",
	Applet: "applet", Area: "area", Article: "article", Aside: "aside",
	Audio: "audio", B: "b", Base: "base", Basefont: "basefont", Bdi: "bdi",
	Bdo: "bdo", Big: "big", Blink: "blink", Blockquote: "blockquote",
	Body: "body", Br: "br", Button: "button", Canvas: "canvas",
	Caption: "caption", Center: "center", Cite: "cite", Code: "code",
	Col: "col", Colgroup: "colgroup", Content: "content", Data: "data",
	Datalist: "datalist", Dd: "dd", Del: "del", Details: "details",
	Dfn: "dfn", Dialog: "dialog", Dir: "dir", Div: "div", Dl: "dl",
	Dt: "dt", Em: "em", Embed: "embed", Fieldset: "fieldset",
	Figcaption: "figcaption", Figure: "figure", Font: "font",
	Footer: "footer", Form: "form", Frame: "frame", Frameset: "frameset",
	H1: "h1", H2: "h2", H3: "h3", H4: "h4", H5: "h5", H6: "h6",
	Head: "head", Header: "header", Hgroup: "hgroup", Hr: "hr",
	Html: "html", I: "i", Iframe: "iframe", Img: "img", Input: "input",
	Ins: "ins", Isindex: "isindex", Kbd: "kbd", Keygen: "keygen",
	Label: "label", Legend: "legend", Li: "li", Link: "link",
	Listing: "listing", Main: "main", Map: "map", Mark: "mark",
	Marquee: "marquee", Math: "math", Menu: "menu", Menuitem: "menuitem",
	Meta: "meta", Meter: "meter", Multicol: "multicol", Nav: "nav",
	Nextid: "nextid", Nobr: "nobr", Noembed: "noembed",
	Noframes: "noframes", Noscript: "noscript", Object: "object",
	Ol: "ol", Optgroup: "optgroup", Option: "option", Output: "output",
	P: "p", Param: "param", Picture: "picture", Plaintext: "plaintext",
	Pre: "pre", Progress: "progress", Q: "q", Rb: "rb", Rp: "rp",
	Rt: "rt", Rtc: "rtc", Ruby: "ruby", S: "s", Samp: "samp",
	Script: "script", Search: "search", Section: "section",
	Select: "select", Shadow: "shadow", Slot: "slot", Small: "small",
	Source: "source", Spacer: "spacer", Span: "span", Strike: "strike",
	Strong: "strong", Style: "style", Sub: "sub", Summary: "summary",
	Sup: "sup", Svg: "svg", Table: "table", Tbody: "tbody", Td: "td",
	Template: "template", Textarea: "textarea", Tfoot: "tfoot", Th: "th",
	Thead: "thead", Time: "time", Title: "title", Tr: "tr",
	Track: "track", Tt: "tt", U: "u", Ul: "ul", Var: "var",
	Video: "video", Wbr: "wbr", Xmp: "xmp",
}

// String returns the canonical (lowercase) element name.
func (t Tag) String() string {
	if t <= Unknown || t >= nTags {
		return names[Unknown]
	}
	return names[t]
}
