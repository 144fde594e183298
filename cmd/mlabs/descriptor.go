/*
 * descriptor.go, part of mlabs.
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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/chemplot"
)

var (
	descKappa     float64
	descOverreach bool
	descPlot      string
	descJSON      bool
)

var descriptorCmd = &cobra.Command{
	Use:   "descriptor FILE",
	Short: "Print the descriptor of a structure",
	Long: `Prints one line per atom of the descriptor: the normalized element number
and the radial term. FILE is an extended XYZ file, or JSON if it ends in .json.`,
	Args: cobra.ExactArgs(1),
	RunE: runDescriptor,
}

func init() {
	descriptorCmd.Flags().Float64Var(&descKappa, "kappa", 0, "cutoff radius in Angstrom (default from config)")
	descriptorCmd.Flags().BoolVar(&descOverreach, "overreach", false, "double the cutoff radius")
	descriptorCmd.Flags().StringVar(&descPlot, "plot", "", "also plot the descriptor to this file")
	descriptorCmd.Flags().BoolVar(&descJSON, "json", false, "print the descriptor as a JSON array")
	rootCmd.AddCommand(descriptorCmd)
}

func runDescriptor(cmd *cobra.Command, args []string) error {
	opts, err := descriptorOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("kappa") {
		opts.Kappa = descKappa
	}
	opts.Overreach = descOverreach
	S, err := chem.FileRead(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}
	D, err := chem.NewDescriptor(S, opts)
	if err != nil {
		return err
	}
	if descPlot != "" {
		if err := chemplot.Descriptor(D, filepath.Base(args[0]), descPlot); err != nil {
			return fmt.Errorf("cannot plot descriptor: %w", err)
		}
	}
	if descJSON {
		return json.NewEncoder(os.Stdout).Encode([]float64(D))
	}
	for i := 0; i < D.Atoms(); i++ {
		n, r := D.Pair(i)
		fmt.Printf("%5d %10.6f %10.6f\n", i, n, r)
	}
	return nil
}
