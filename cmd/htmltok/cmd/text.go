package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-htmltok/pkg/htmltok"
	"github.com/cwbudde/go-htmltok/pkg/tag"
)

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Extract human-readable text from an HTML document",
	Long: `Extract the text of an HTML document's <body>, one line per
paragraph, with a little structure kept for lists and links.

Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

// textExtractor rebuilds readable text from innertext words. Because the
// tokenizer reports one word at a time, spaces are re-inserted between
// consecutive words of the same line.
type textExtractor struct {
	htmltok.DefaultHandler
	inBody     bool
	insideLine bool
}

func (h *textExtractor) ElementOpen(p *htmltok.Parser, t tag.Tag, name []byte) {
	switch t {
	case tag.Body:
		h.inBody = true
	case tag.Ul, tag.Ol, tag.Br:
		fmt.Println()
		h.insideLine = false
	case tag.Li:
		fmt.Print("\t- ")
	case tag.A:
		if h.insideLine {
			fmt.Print(" ")
		}
		fmt.Print("[")
		h.insideLine = false
	}
}

func (h *textExtractor) ElementClose(p *htmltok.Parser, t tag.Tag, name []byte) {
	switch t {
	case tag.Body:
		h.inBody = false
	case tag.Li, tag.P:
		fmt.Println()
		h.insideLine = false
	case tag.A:
		fmt.Print("]")
	}
}

func (h *textExtractor) InnerText(p *htmltok.Parser, text []byte) {
	if !h.inBody {
		return
	}
	// Script bodies never arrive as innertext, but style bodies do (only
	// <script> switches the lexer mode), so filter on the enclosing tag.
	if t := p.CurrentElementTag(); t == tag.Style || t == tag.Script {
		return
	}
	if h.insideLine {
		fmt.Print(" ")
	} else {
		h.insideLine = true
	}
	fmt.Printf("%s", text)
}

func runText(cmd *cobra.Command, args []string) error {
	in, _, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	p := htmltok.New(htmltok.WithEventHandler(&textExtractor{}))
	if err := feed(p, in); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
