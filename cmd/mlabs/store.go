/*
 * store.go, part of mlabs.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/internal/store"
)

var (
	storeLabel string
	storeK     int
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the table of reference descriptors",
}

var storeAddCmd = &cobra.Command{
	Use:   "add FILE",
	Short: "Store the descriptor of a structure under a label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if storeLabel == "" {
			return errors.New("--label is required")
		}
		st, D, err := openStore(cmd, args[0])
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveDescriptor(cmd.Context(), storeLabel, D)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var storeNearestCmd = &cobra.Command{
	Use:   "nearest FILE",
	Short: "Show the stored structures closest to FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, D, err := openStore(cmd, args[0])
		if err != nil {
			return err
		}
		defer st.Close()
		nb, err := st.Nearest(cmd.Context(), D, storeK)
		if err != nil {
			return err
		}
		for _, n := range nb {
			fmt.Printf("%-36s %-24s %.6f\n", n.ID, n.Label, n.Distance)
		}
		return nil
	},
}

func init() {
	storeAddCmd.Flags().StringVar(&storeLabel, "label", "", "label for the structure")
	storeNearestCmd.Flags().IntVarP(&storeK, "k", "k", 5, "number of neighbours")
	storeCmd.AddCommand(storeAddCmd, storeNearestCmd)
	rootCmd.AddCommand(storeCmd)
}

// openStore opens the configured database and computes the descriptor of the
// structure in name, with the same options used for predictions.
func openStore(cmd *cobra.Command, name string) (*store.Store, chem.Descriptor, error) {
	if !cfg.DB.Enabled() {
		return nil, nil, errors.New("no database configured (db.driver and db.dsn)")
	}
	opts, err := descriptorOptions()
	if err != nil {
		return nil, nil, err
	}
	opts.Overreach = true
	S, err := chem.FileRead(name)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	D, err := chem.NewDescriptor(S, opts)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cmd.Context(), cfg.DB.Driver, cfg.DB.DSN, cfg.DB.Table, logger)
	if err != nil {
		return nil, nil, err
	}
	return st, D, nil
}
