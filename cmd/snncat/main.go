// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// snncat prints the registered neuron model schemas, for wiring up and
// debugging external bridges that cache them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snnkit/snnkit/codec"
	"github.com/snnkit/snnkit/neuron"
)

func main() {
	root := &cobra.Command{
		Use:   "snncat",
		Short: "inspect the registered neuron model schemas",
	}
	root.AddCommand(typesCmd(), schemaCmd(), defaultsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "list the registered neuron types",
		Run: func(cmd *cobra.Command, args []string) {
			for nt := neuron.NullNeuron; nt < neuron.NeuronTypesN; nt++ {
				ds := nt.Desc()
				fmt.Printf("%2d  %-20s params: %2d  signals: %d  conductance based: %-5v  spike source: %v\n",
					ds.TypeID, ds.Name, ds.NParams(), ds.NSignals(), ds.CondBased, ds.SpikeSource)
			}
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <type>",
		Short: "print a neuron type schema as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(codec.Schema(typeArg(args[0])))
		},
	}
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <type>",
		Short: "print a default-constructed instance in wire form",
		Run: func(cmd *cobra.Command, args []string) {
			nt := typeArg(args[0])
			ds := nt.Desc()
			inst, err := codec.Encode(nt, ds.NewParams(), ds.NewSignals())
			if err != nil {
				log.Fatal("encoding failed", "type", ds.Name, "err", err)
			}
			printJSON(inst)
		},
		Args: cobra.ExactArgs(1),
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal("json encoding failed", "err", err)
	}
	fmt.Println(string(out))
}

// typeArg resolves a command-line type argument, given either as the
// enum name, the descriptor name, or the numeric external type id.
func typeArg(arg string) neuron.NeuronTypes {
	if id, err := strconv.Atoi(arg); err == nil {
		nt, err := neuron.TypeFromID(int32(id))
		if err != nil {
			log.Fatal("unknown neuron type id", "id", id)
		}
		return nt
	}
	for nt := neuron.NullNeuron; nt < neuron.NeuronTypesN; nt++ {
		if nt.String() == arg || nt.Desc().Name == arg {
			return nt
		}
	}
	log.Fatal("unknown neuron type", "type", arg)
	return neuron.NullNeuron
}
