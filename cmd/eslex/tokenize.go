package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eslex/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize an ECMAScript source file",
	Long:  `Tokenize breaks an ECMAScript source file into tokens and prints them to stdout; diagnostics go to stderr`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	addLexerFlags(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], s.opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := writeDiagnostics(os.Stderr, s, result.Bag, result.FileSet); err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	formatIdx := s.timer.Begin("format")
	if err := writeTokens(out, s.cfg.Output.Format, result.Tokens); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	s.timer.End(formatIdx, fmt.Sprintf("%d tokens", len(result.Tokens)))

	printTimings(cmd.ErrOrStderr(), s.timer)
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
