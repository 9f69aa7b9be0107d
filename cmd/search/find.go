package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/scottcagno/kmpsearch/pkg/search"
	"github.com/scottcagno/kmpsearch/pkg/source"
	"github.com/spf13/cobra"
)

var matchColor = color.New(color.FgRed, color.Bold)

func (a *app) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query> [file]",
		Short: "Print the start offset of every occurrence of query",
		Long: `Find prints the zero-based byte offset of every occurrence of query in the
input, overlapping occurrences included, one per line in increasing order.
The input is the named file, or stdin when no file (or "-") is given.

Exits with status 1 when there is no occurrence.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				a.conf.Input = args[1]
			}
			a.conf = checkConfig(a.conf)
			return a.find(cmd.OutOrStdout(), cmd.InOrStdin(), []byte(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&a.conf.Count, "count", "c", false, "Print only the number of occurrences")
	cmd.Flags().BoolVarP(&a.conf.Highlight, "highlight", "H", false, "Print each occurrence with surrounding text")
	cmd.Flags().IntVarP(&a.conf.Context, "context", "C", defaultContext, "Bytes of surrounding text shown with --highlight")
	cmd.Flags().IntVarP(&a.conf.Limit, "limit", "n", 0, "Print at most this many occurrences (0 prints all)")
	return cmd
}

func (a *app) find(w io.Writer, in io.Reader, query []byte) error {
	text, err := a.load(in)
	if err != nil {
		return err
	}
	a.log.Debugf("loaded %d bytes from %s", len(text), a.conf.Input)

	start := time.Now()
	positions := search.FindPositionsBytes(text, query)
	a.log.Debugf("found %d occurrences of %q in %s", len(positions), query, time.Since(start))

	if a.conf.Count {
		fmt.Fprintln(w, len(positions))
	}
	if positions == nil {
		return errNoMatch
	}
	if a.conf.Count {
		return nil
	}
	if a.conf.Limit > 0 && len(positions) > a.conf.Limit {
		positions = positions[:a.conf.Limit]
	}
	for _, p := range positions {
		if !a.conf.Highlight {
			fmt.Fprintln(w, p)
			continue
		}
		fmt.Fprintf(w, "%d: %s\n", p, highlight(text, p, len(query), a.conf.Context))
	}
	return nil
}

// load materializes the input named by the config. Stdin is read from
// in so commands can be driven without a terminal.
func (a *app) load(in io.Reader) ([]byte, error) {
	if a.conf.Input == source.Stdin {
		return source.ReadAll(in)
	}
	return source.Load(a.conf.Input, a.conf.UseMmap)
}

// highlight returns the occurrence at text[p:p+n] with up to ctx bytes
// on either side. Only the occurrence itself is colored.
func highlight(text []byte, p, n, ctx int) string {
	lo, hi := p-ctx, p+n+ctx
	if lo < 0 {
		lo = 0
	}
	if hi > len(text) {
		hi = len(text)
	}
	var sb bytes.Buffer
	sb.WriteString(printable(text[lo:p]))
	sb.WriteString(matchColor.Sprint(printable(text[p : p+n])))
	sb.WriteString(printable(text[p+n : hi]))
	return sb.String()
}

// printable quotes b the way %q would, without the surrounding quotes,
// so line breaks and control bytes do not split the output line.
func printable(b []byte) string {
	q := strconv.Quote(string(b))
	return q[1 : len(q)-1]
}
