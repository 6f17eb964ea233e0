package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/hcyang1106/lc2k/pkg/assembler"
	"github.com/hcyang1106/lc2k/pkg/linker"
	"github.com/hcyang1106/lc2k/pkg/object"
	"github.com/hcyang1106/lc2k/pkg/utils"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version string

func main() {
	utils.MustNo(flag.Set("logtostderr", "true"))

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		utils.Exit(exitCode(err), err)
	}
	glog.Flush()
	os.Exit(0)
}

// blank lines inside the code have their own status
func exitCode(err error) int {
	if errors.Is(err, object.ErrBlankLineInCode) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lc2k",
		Short:         "Assembler and linker for LC-2K",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog refuses to work until the go flag set is parsed
			return flag.CommandLine.Parse(nil)
		},
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(newAssembleCmd(), newLinkCmd(), newObjdumpCmd())
	return rootCmd
}

func newAssembleCmd() *cobra.Command {
	limits := assembler.DefaultLimits()
	cmd := &cobra.Command{
		Use:   "assemble input.s output.o",
		Short: "Assemble one source file into a relocatable object file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembler.AssembleFile(args[0], args[1], limits)
		},
	}
	cmd.Flags().IntVar(&limits.MaxLineLength, "max-line-length", limits.MaxLineLength, "longest accepted source line")
	cmd.Flags().IntVar(&limits.MaxWords, "max-words", limits.MaxWords, "most text plus data words per module")
	return cmd
}

func newLinkCmd() *cobra.Command {
	ctx := linker.NewContext()
	cmd := &cobra.Command{
		Use:   "link obj1.o [obj2.o ...] output.exe",
		Short: "Link object files into a flat machine code image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx.Args.Output = args[len(args)-1]
			if err := linker.Link(ctx, args[:len(args)-1]); err != nil {
				return err
			}
			return linker.WriteOutput(ctx)
		},
	}
	cmd.Flags().IntVar(&ctx.Args.Limits.MaxFiles, "max-files", ctx.Args.Limits.MaxFiles, "most object files per link")
	cmd.Flags().IntVar(&ctx.Args.Limits.MaxEntries, "max-entries", ctx.Args.Limits.MaxEntries, "most entries per object file section or table")
	cmd.Flags().StringVar(&ctx.Args.MapFile, "map", "", "also write the global symbol table to this file")
	return cmd
}

func newObjdumpCmd() *cobra.Command {
	limits := object.DefaultLimits()
	return &cobra.Command{
		Use:   "objdump file.o",
		Short: "Pretty-print the contents of an object file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mod, err := object.Unmarshal(content, limits)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			pp.Default.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
			_, err = pp.Println(mod)
			return err
		},
	}
}
