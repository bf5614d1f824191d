package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hornmesh/hornmesh/horn"
	"github.com/hornmesh/hornmesh/schema"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hornmesh",
		Short:         "Build waveguide mesh geometry for BEM simulation",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newBuildCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "build <parameters.yaml>",
		Short: "Validate a parameter document and write its mesh to --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

func runBuild(cmd *cobra.Command, paramPath, outDir string) error {
	f, err := os.Open(paramPath)
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := schema.Decode(f)
	if err != nil {
		return err
	}

	result, err := horn.Build(context.Background(), rec, horn.BuildOptions{
		OnStage: func(stage string) { fmt.Fprintf(cmd.ErrOrStderr(), "hornmesh: %s\n", stage) },
	})
	if err != nil {
		var be *horn.BuildError
		if errors.As(err, &be) {
			return fmt.Errorf("%s (%s): %s: %w", be.Kind, be.Kind.Class(), be.Detail, err)
		}
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(paramPath), filepath.Ext(paramPath))
	mshPath := filepath.Join(outDir, base+".msh")
	if err := os.WriteFile(mshPath, []byte(result.MshText), 0o644); err != nil {
		return err
	}

	if result.STLText != "" {
		stlPath := filepath.Join(outDir, base+".stl")
		if err := os.WriteFile(stlPath, []byte(result.STLText), 0o644); err != nil {
			return err
		}
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "hornmesh: warning: %s\n", w)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d nodes, %d elements)\n", mshPath, result.NodeCount, result.ElementCount)
	return nil
}
