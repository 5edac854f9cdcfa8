// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/store"
	"github.com/spf13/cobra"
)

// openStore opens the store described by the configuration.
func (a *app) openStore() (*store.Store, error) {
	cfg := store.DefaultConfig()
	cfg.Path = a.cfg.Store.Path
	cfg.InMemory = a.cfg.Store.InMemory
	cfg.SyncWrites = a.cfg.Store.SyncWrites
	cfg.Logger = a.log.With("component", "badger")

	return store.Open(cfg)
}

// withStore runs fn against an open store and closes it afterwards.
func (a *app) withStore(fn func(s *store.Store) error) (err error) {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(s)
}

func (a *app) storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Named matrix store (BadgerDB)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "put <name> <file>",
			Short: "Store the matrix file under name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := a.load(args[1])
				if err != nil {
					return err
				}
				return a.withStore(func(s *store.Store) error {
					if err := s.Put(cmd.Context(), args[0], m); err != nil {
						return err
					}
					a.log.Info("matrix stored", "name", args[0], "nnz", m.NNZ())

					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Write the matrix stored under name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := sparse.NewZeros[float64](0, 0, a.cfg.SparseOptions()...)
				if err != nil {
					return err
				}
				err = a.withStore(func(s *store.Store) error {
					return s.Get(cmd.Context(), args[0], m)
				})
				if err != nil {
					return err
				}

				return a.emit(cmd, m)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored matrix names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withStore(func(s *store.Store) error {
					names, err := s.List(cmd.Context())
					if err != nil {
						return err
					}
					for _, n := range names {
						fmt.Fprintln(cmd.OutOrStdout(), n)
					}

					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Delete the matrix stored under name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(s *store.Store) error {
					return s.Delete(cmd.Context(), args[0])
				})
			},
		},
	)

	return cmd
}
