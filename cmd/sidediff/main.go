package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/sidediff/internal/common"
	"github.com/aleister1102/sidediff/internal/config"
	"github.com/aleister1102/sidediff/internal/differ"
	"github.com/aleister1102/sidediff/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes follow sdiff: 0 no differences, 1 differences, 2 trouble.
const (
	exitNoDifferences = 0
	exitDifferences   = 1
	exitTrouble       = 2
)

const usageLine = "Usage: sidediff [flags] FILE1 FILE2"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := exitNoDifferences
	cmd := newRootCmd(stdin, stdout, stderr, &exitCode)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "sidediff: %v\n", err)
		return exitTrouble
	}
	return exitCode
}

// newRootCmd builds the root command. exitCode is set once a comparison finishes;
// --help leaves it untouched.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	flags := &AppFlags{}

	cmd := &cobra.Command{
		Use:   "sidediff [flags] FILE1 FILE2",
		Short: "Compare two files side by side",
		Long: `sidediff prints FILE1 and FILE2 in two columns, marking each row with
' ' (identical), '|' (changed), '<' (only in FILE1) or '>' (only in FILE2).
Use - for either file to read standard input.

Exit status is 0 if the inputs are identical, 1 if they differ and 2 on trouble.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return common.NewError("expected 2 file arguments, got %d\n%s", len(args), usageLine)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := compareFiles(cmd, flags, args[0], args[1], stdin, stdout, stderr)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	registerFlags(cmd, flags)

	return cmd
}

// compareFiles loads configuration, reads both inputs and writes the comparison to stdout.
func compareFiles(cmd *cobra.Command, flags *AppFlags, leftPath, rightPath string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		return exitTrouble, common.WrapError(err, "could not load configuration")
	}
	applyOverrides(cmd, flags, gCfg)

	if err := config.ValidateConfig(gCfg); err != nil {
		return exitTrouble, err
	}

	appLogger, err := logger.New(gCfg.LogConfig, stderr)
	if err != nil {
		return exitTrouble, common.WrapError(err, "could not initialize logger")
	}
	defer func() {
		_ = appLogger.Close()
	}()
	zLogger := *appLogger.GetZerolog()

	fileManager := common.NewFileManagerWithStdin(zLogger, stdin)
	readOpts := common.FileReadOptions{MaxSize: gCfg.InputConfig.MaxInputSizeBytes()}

	left, err := fileManager.ReadInput(leftPath, readOpts)
	if err != nil {
		return exitTrouble, common.WrapErrorf(err, "cannot read %s", leftPath)
	}
	right, err := fileManager.ReadInput(rightPath, readOpts)
	if err != nil {
		return exitTrouble, common.WrapErrorf(err, "cannot read %s", rightPath)
	}

	diffCfg, err := differ.DiffConfigFromSettings(gCfg.DiffConfig)
	if err != nil {
		return exitTrouble, err
	}
	contentDiffer, err := differ.NewContentDiffer(zLogger, diffCfg)
	if err != nil {
		return exitTrouble, common.WrapError(err, "could not initialize differ")
	}

	result := contentDiffer.Compare(left, right)
	if _, err := stdout.Write(result.Output); err != nil {
		return exitTrouble, common.WrapError(err, "failed to write output")
	}

	zLogger.Info().
		Str("left", leftPath).
		Str("right", rightPath).
		Bool("identical", result.Identical).
		Bool("has_differences", result.Stats.HasDifferences()).
		Int("rows", result.Stats.Rows).
		Msg("Comparison finished")

	if result.Identical {
		return exitNoDifferences, nil
	}
	return exitDifferences, nil
}
