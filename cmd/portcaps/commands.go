package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"portcfg-go/pinplan"
	"portcfg-go/port"
	"portcfg-go/port/routing"
)

var errPlanRejected = errors.New("plan rejected")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portcaps",
		Short:        "Query the PORT pin-mode capability table",
		SilenceUsage: true,
	}
	root.AddCommand(newPinCmd(), newModeCmd(), newDumpCmd(), newCheckCmd(), newVersionCmd())
	return root
}

func newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <pin>",
		Short: "List the modes and signals of one pad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			p, err := port.ParsePin(args[0])
			if err != nil {
				return err
			}
			r, err := routing.Default()
			if err != nil {
				return err
			}
			modes := port.ModesOf(p)
			fmt.Fprintf(w, "%s (pad %d)\n", p, uint16(p))
			if modes == 0 {
				fmt.Fprintln(w, "  not routed")
				return nil
			}
			for _, m := range modes.Modes() {
				sig, _ := r.Signal(m, p)
				fmt.Fprintf(w, "  %-5s %s\n", m, sig)
			}
			return nil
		},
	}
}

func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <mode>",
		Short: "List the pads available in a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			m, err := port.ParseMode(args[0])
			if err != nil {
				return err
			}
			r, err := routing.Default()
			if err != nil {
				return err
			}
			for _, p := range port.PinsIn(m) {
				sig, _ := r.Signal(m, p)
				fmt.Fprintf(w, "%-6s %s\n", p, sig)
			}
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the table as hex words, or its binary layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			t := port.Description()
			if binary {
				b, err := t.MarshalBinary()
				if err != nil {
					return err
				}
				_, err = w.Write(b)
				return err
			}
			for m := range t {
				fmt.Fprintf(w, "%-5s", port.Mode(m))
				for _, word := range t[m] {
					fmt.Fprintf(w, " %04X", word)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "write the 144-byte little-endian layout")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <plan.yaml>",
		Short: "Validate a pin-mux plan against the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			plan, err := pinplan.Load(args[0])
			if err != nil {
				return err
			}
			r, err := routing.Default()
			if err != nil {
				return err
			}
			res, probs := plan.Validate(r)
			for _, e := range probs {
				cmd.PrintErrln(e)
			}
			if len(probs) > 0 {
				return fmt.Errorf("%s: %w (%d problems)", plan.Board, errPlanRejected, len(probs))
			}
			fmt.Fprintf(w, "%s: %d pins ok\n", plan.Board, len(res))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the configuration version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			g := port.Generated
			fmt.Fprintf(w, "vendor %d, AUTOSAR %s, SW %s, set-pin-mode API %t\n",
				g.VendorID, g.ARRelease, g.SW, port.SetPinModeAPI)
		},
	}
}
