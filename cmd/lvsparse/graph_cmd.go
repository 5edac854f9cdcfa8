// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/graph"
	"github.com/spf13/cobra"
)

func (a *app) graphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Treat a square matrix as a weighted directed graph",
	}
	cmd.AddCommand(a.graphBFSCmd(), a.graphPathCmd(), a.graphTopoCmd())

	return cmd
}

// loadGraph reads an adjacency matrix file; non-square input is rejected.
func (a *app) loadGraph(path string) (*graph.Graph[float64], error) {
	g, err := graph.New[float64](0, false, a.cfg.SparseOptions()...)
	if err != nil {
		return nil, err
	}
	if err = g.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	a.log.Debug("graph loaded", "path", path, "nodes", g.Dim(), "edges", g.EdgeCount())

	return g, nil
}

func parseNode(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", s, err)
	}

	return n, nil
}

func (a *app) graphBFSCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs <file> <start>",
		Short: "Print nodes in breadth-first order with their depths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			start, err := parseNode(args[1])
			if err != nil {
				return err
			}
			res, err := graph.BFS(g, start, graph.WithContext(cmd.Context()), graph.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, v := range res.Order {
				fmt.Fprintf(w, "%d %d\n", v, res.Depth[v])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "depth limit (0 = unlimited)")

	return cmd
}

func (a *app) graphPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <file> <source> [dest]",
		Short: "Shortest distances from source, or the shortest path to dest",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			src, err := parseNode(args[1])
			if err != nil {
				return err
			}
			res, err := graph.Dijkstra(g, src, graph.WithPathContext(cmd.Context()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(args) == 2 {
				for v, d := range res.Dist {
					if math.IsInf(d, 1) {
						fmt.Fprintf(w, "%d inf\n", v)
						continue
					}
					fmt.Fprintf(w, "%d %s\n", v, strconv.FormatFloat(d, 'g', -1, 64))
				}

				return nil
			}
			dest, err := parseNode(args[2])
			if err != nil {
				return err
			}
			path, err := res.PathTo(dest)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s (%s)\n", joinInts(path, " "), strconv.FormatFloat(res.Dist[dest], 'g', -1, 64))

			return nil
		},
	}
}

func (a *app) graphTopoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topo <file>",
		Short: "Print a topological order of an acyclic graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			order, err := graph.TopologicalSort(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(order, " "))

			return nil
		},
	}
}

func joinInts(v []int, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
