package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-htmltok/pkg/htmltok"
	"github.com/cwbudde/go-htmltok/pkg/tag"
)

var (
	showPos    bool
	onlyErrors bool
)

var eventsCmd = &cobra.Command{
	Use:   "events [file]",
	Short: "Tokenize an HTML document and print every event",
	Long: `Tokenize an HTML document and print the resulting event stream.

This command is useful for debugging the tokenizer and understanding how a
document is cut into events. Reads from stdin when no file is given.

Examples:
  # Dump the events of a file
  htmltok events page.html

  # Show event positions (line:column)
  htmltok events --show-pos page.html

  # Show only errors
  htmltok events --only-errors page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().BoolVar(&showPos, "show-pos", false, "show event positions (line:column)")
	eventsCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only error events")
}

// eventPrinter writes one line per event.
type eventPrinter struct {
	htmltok.DefaultHandler
	events int
	errors int
}

func (h *eventPrinter) line(p *htmltok.Parser, format string, args ...any) {
	h.events++
	fmt.Printf(format, args...)
	if showPos {
		pos := p.Position()
		fmt.Printf(" @%d:%d", pos.Row, pos.Col)
	}
	fmt.Println()
}

func (h *eventPrinter) DocumentBegin(p *htmltok.Parser) {
	if onlyErrors {
		return
	}
	h.line(p, "DOCUMENT BEGIN")
}

func (h *eventPrinter) ElementOpen(p *htmltok.Parser, t tag.Tag, name []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "ELEMENT OPEN %s (%d)", name, t)
}

func (h *eventPrinter) ElementClose(p *htmltok.Parser, t tag.Tag, name []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "ELEMENT CLOSE %s (%d)", name, t)
}

func (h *eventPrinter) Attribute(p *htmltok.Parser, key, value []byte) {
	if onlyErrors {
		return
	}
	if value == nil {
		h.line(p, "ATTRIBUTE %s VOID", key)
	} else {
		h.line(p, "ATTRIBUTE %s=%q", key, value)
	}
}

func (h *eventPrinter) Comment(p *htmltok.Parser, text []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "COMMENT %q", text)
}

func (h *eventPrinter) InnerText(p *htmltok.Parser, text []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "INNERTEXT %q", text)
}

func (h *eventPrinter) CDATA(p *htmltok.Parser, text []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "CDATA %q", text)
}

func (h *eventPrinter) Doctype(p *htmltok.Parser, text []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "DOCTYPE %q", text)
}

func (h *eventPrinter) Script(p *htmltok.Parser, body []byte) {
	if onlyErrors {
		return
	}
	h.line(p, "SCRIPT %q", body)
}

func (h *eventPrinter) Error(p *htmltok.Parser, kind htmltok.ErrorKind) {
	h.errors++
	h.line(p, "ERROR %s", kind)
}

func runEvents(cmd *cobra.Command, args []string) error {
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n---\n", name)
	}

	printer := &eventPrinter{}
	p := htmltok.New(htmltok.WithEventHandler(printer))
	if err := feed(p, in); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("---\nTotal events: %d\n", printer.events)
		if printer.errors > 0 {
			fmt.Printf("Errors: %d\n", printer.errors)
		}
	}
	return nil
}
