package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/scottcagno/kmpsearch/pkg/search"
	"github.com/spf13/cobra"
)

func (a *app) newTableCmd() *cobra.Command {
	var align bool
	cmd := &cobra.Command{
		Use:   "table <sequence>",
		Short: "Print the prefix function of a sequence",
		Long: `Table prints the prefix function of the bytes of sequence: entry i is the
length of the longest proper prefix of sequence[0..i] that is also a suffix
of it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pi := search.Compute([]byte(args[0]))
			a.log.Debugf("prefix function of %d bytes", len(pi))
			if align {
				return writeAligned(cmd.OutOrStdout(), args[0], pi)
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(pi, " "))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&align, "align", "a", false, "Print each value under its byte")
	return cmd
}

func joinInts(vals []int, sep string) string {
	ss := make([]string, len(vals))
	for i, v := range vals {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, sep)
}

func writeAligned(w io.Writer, seq string, pi []int) error {
	tw := tabwriter.NewWriter(w, 1, 4, 1, ' ', tabwriter.AlignRight)
	for i := range pi {
		fmt.Fprintf(tw, "%s\t", printable([]byte{seq[i]}))
	}
	fmt.Fprintln(tw)
	for _, v := range pi {
		fmt.Fprintf(tw, "%d\t", v)
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}
