package htmltok

// Flag bits carried in Opts.
type Flag uint32

// FlagAccumulateInnerText is reserved; it has no effect on the current
// grammar.
const FlagAccumulateInnerText Flag = 1 << 0

// Opts carries parser configuration.
type Opts struct {
	Flags Flag
}

// DefaultOpts is the configuration installed by New.
var DefaultOpts = Opts{}

// Option configures a Parser during New.
type Option func(*Parser)

// WithEventHandler installs h as the event handler.
func WithEventHandler(h EventHandler) Option {
	return func(p *Parser) { p.events = h }
}

// WithOpts replaces the full option block.
func WithOpts(o Opts) Option {
	return func(p *Parser) { p.opts = o }
}
