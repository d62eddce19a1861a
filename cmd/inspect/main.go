package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"palga/internal/ga"
	"palga/internal/logging"
)

var (
	alphabet     int
	halfMirror   bool
	championPath string
)

var rootCmd = &cobra.Command{
	Use:          "inspect",
	Short:        "Score chromosomes and saved champions",
	SilenceUsage: true,
}

var scoreCmd = &cobra.Command{
	Use:   "score CHROMOSOME...",
	Short: "Print the fitness breakdown of one or more chromosomes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := ga.Options{HalfMirror: halfMirror}
		for _, arg := range args {
			c, err := ga.ParseChromosome(strings.ToUpper(arg), alphabet)
			if err != nil {
				return err
			}
			printScore(cmd.OutOrStdout(), c, opts)
		}
		return nil
	},
}

var championCmd = &cobra.Command{
	Use:   "champion",
	Short: "Load a saved champion and re-score it",
	RunE: func(cmd *cobra.Command, args []string) error {
		saved, ind, err := logging.LoadChampion(championPath)
		if err != nil {
			return fmt.Errorf("load champion: %w", err)
		}
		opts := ga.Options{HalfMirror: halfMirror}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Champion from gen %d (saved fitness=%d, alphabet=%d)\n",
			saved.Generation, saved.Fitness, saved.Alphabet)
		printScore(out, ind.Chromosome, opts)
		if got := ind.FitnessWith(opts); got != saved.Fitness {
			fmt.Fprintf(out, "note: recomputed fitness %d differs from saved %d (scoring policy changed?)\n", got, saved.Fitness)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&halfMirror, "half-mirror", false, "count each mirrored pair once")
	scoreCmd.Flags().IntVar(&alphabet, "alphabet", ga.MaxAlphabet, "alphabet size used to validate symbols")
	championCmd.Flags().StringVar(&championPath, "path", "artifacts/champion_final.json", "path to champion JSON")

	rootCmd.AddCommand(scoreCmd, championCmd)
}

func printScore(w io.Writer, c ga.Chromosome, opts ga.Options) {
	sc := c.Breakdown(opts)
	fmt.Fprintf(w, "%s\tlength=%d\tmirror=%d\tadjacency=%d\tfitness=%d\n",
		c, len(c), sc.Mirror, sc.Adjacency, sc.Total)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
