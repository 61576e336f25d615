package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-htmltok/pkg/htmltok"
	"github.com/cwbudde/go-htmltok/pkg/strutil"
	"github.com/cwbudde/go-htmltok/pkg/tag"
)

var linksCmd = &cobra.Command{
	Use:   "links [file]",
	Short: "Print all link targets of an HTML document",
	Long: `Print the href value of every <a> element, one per line.

Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)
}

type linkExtractor struct {
	htmltok.DefaultHandler
}

func (linkExtractor) Attribute(p *htmltok.Parser, key, value []byte) {
	if p.CurrentElementTag() != tag.A {
		return
	}
	if value != nil && strutil.FragmentEqualFold(key, "href") {
		fmt.Printf("%s\n", value)
	}
}

func runLinks(cmd *cobra.Command, args []string) error {
	in, _, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	p := htmltok.New(htmltok.WithEventHandler(linkExtractor{}))
	return feed(p, in)
}
