package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-htmltok/pkg/htmltok"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// fs abstracts file access so command behavior is testable in memory.
var fs = afero.NewOsFs()

var chunkSize int

var rootCmd = &cobra.Command{
	Use:   "htmltok",
	Short: "Streaming HTML5 tokenizer",
	Long: `htmltok is a streaming, event-driven HTML5 tokenizer.

It reads HTML as a byte stream in chunks of any size and emits semantic
events: element open/close, attributes, inner-text words, comments, CDATA,
doctype declarations and script bodies. No DOM is ever built, which keeps
memory usage flat regardless of document size.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 4096, "bytes fed to the parser per chunk")
}

// openInput resolves the optional [file] argument; no argument or "-"
// selects stdin.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := fs.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	return f, args[0], nil
}

// feed streams r through the parser chunk by chunk.
func feed(p *htmltok.Parser, r io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.ParseChunk(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}
	}
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
