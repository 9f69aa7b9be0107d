package main

import (
	"fmt"
	"io"
	"time"

	"github.com/scottcagno/kmpsearch/pkg/search"
	"github.com/scottcagno/kmpsearch/pkg/source"
	"github.com/spf13/cobra"
)

var patterns = []string{
	`Not marble nor the gilded monuments`,
	`sluttish`,
	`baz_DOES_NOT_EXIST`,
	`shall`,
	`Nor Mars his sword nor war's quick fire shall burn`,
	`bar_DOES_NOT_EXIST`,
	`eyes`,
	`So, till the judgment that yourself arise`,
	`foo_DOES_NOT_EXIST`,
}

func (a *app) newBenchCmd() *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "bench [file] [pattern...]",
		Short: "Time each searcher over a text",
		Long: `Bench times every searcher over the named file, or a built-in sonnet when no
file is given, for the given patterns or a built-in list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pats := []byte(sonnet55), patterns
			if len(args) > 0 {
				data, err := source.Load(args[0], a.conf.UseMmap)
				if err != nil {
					return err
				}
				text = data
			}
			if len(args) > 1 {
				pats = args[1:]
			}
			if rounds < 1 {
				rounds = 1
			}
			a.log.Debugf("benchmarking %d patterns over %d bytes, %d rounds", len(pats), len(text), rounds)
			w := cmd.OutOrStdout()
			for i, s := range []search.Searcher{search.NewKnuthMorrisPratt(), search.NewRabinKarp()} {
				if i > 0 {
					fmt.Fprintln(w)
				}
				TimeSearcher(w, s, text, pats, rounds)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 1, "Repeat every search this many times")
	return cmd
}

func TimeSearcher(w io.Writer, s search.Searcher, text []byte, pats []string, rounds int) {
	fmt.Fprintf(w, "%s\n", s)
	t1 := time.Now()
	for i := range pats {
		var n []int
		t3 := time.Now()
		for r := 0; r < rounds; r++ {
			n = s.FindAll(text, []byte(pats[i]))
		}
		t4 := time.Since(t3)
		fmt.Fprintf(w, "Found %q, %d times, first at index %d (Took %.6fs)\n", pats[i], len(n), firstOrNone(n), t4.Seconds())
	}
	t2 := time.Since(t1)
	fmt.Fprintf(w, "Took %.6fs, %dns\n", t2.Seconds(), t2.Nanoseconds())
}

func firstOrNone(n []int) int {
	if len(n) == 0 {
		return -1
	}
	return n[0]
}

var sonnet55 = `Not marble nor the gilded monuments
Of princes shall outlive this powerful rhyme;
But you shall shine more bright in these contents
Than unswept stone, besmear'd with sluttish time.
When wasteful war shall statues overturn,
And broils root out the work of masonry,
Nor Mars his sword nor war's quick fire shall burn
The living record of your memory.
'Gainst death and all-oblivious enmity
Shall you pace forth; your praise shall still find room,
Even in the eyes of all posterity
That wear this world out to the ending doom.
    So, till the judgment that yourself arise,
    You live in this, and dwell in lovers' eyes.`
