package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aldvik/timegraph/batch"
	"github.com/aldvik/timegraph/timetable"
)

var (
	verbose     bool
	networkPath string
)

// Execute wires up the command tree and runs it.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:          "timegraph",
		Short:        "Earliest-arrival routing and interval covering over batch input",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	routeCmd := &cobra.Command{
		Use:   "route [query node index...]",
		Short: "Compute earliest-arrival times for scheduled networks",
		Long: "Reads the timetable batch protocol from stdin and prints one\n" +
			"result per query. With --network, loads a YAML network instead\n" +
			"and answers the query indices given as arguments.",
		RunE: runRoute,
	}
	routeCmd.Flags().StringVarP(&networkPath, "network", "n", "", "path to YAML network description")
	rootCmd.AddCommand(routeCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "cover",
		Short: "Select minimum interval covers from batch input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Debug("reading interval-covering protocol from stdin")
			return batch.Cover(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	return rootCmd.Execute()
}

func runRoute(cmd *cobra.Command, args []string) error {
	if networkPath == "" {
		if len(args) > 0 {
			return fmt.Errorf("query arguments need --network; stdin protocol carries its own queries")
		}
		log.Debug("reading timetable protocol from stdin")

		return batch.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	g, err := batch.LoadNetwork(networkPath)
	if err != nil {
		return err
	}
	log.Debugf("loaded network %s: %d nodes, source %d", networkPath, g.NodeCount(), g.Source())

	if err := timetable.Dijkstra(g); err != nil {
		return err
	}

	// No explicit queries: report every node.
	queries := make([]int, 0, len(args))
	if len(args) == 0 {
		for i := 0; i < g.NodeCount(); i++ {
			queries = append(queries, i)
		}
	} else {
		for _, a := range args {
			q, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("query %q is not a node index", a)
			}
			if q < 0 || q >= g.NodeCount() {
				return fmt.Errorf("query %d out of range 0..%d", q, g.NodeCount()-1)
			}
			queries = append(queries, q)
		}
	}

	out := cmd.OutOrStdout()
	for _, q := range queries {
		if arrival, ok := g.ArrivalAt(q); ok {
			fmt.Fprintf(out, "%d\n", arrival)
		} else {
			fmt.Fprintln(out, batch.Impossible)
		}
	}

	return nil
}
