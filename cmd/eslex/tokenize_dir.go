package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"eslex/internal/config"
	"eslex/internal/diag"
	"eslex/internal/diagfmt"
	"eslex/internal/driver"
	"eslex/internal/source"
)

var tokenizeDirCmd = &cobra.Command{
	Use:   "tokenize-dir [flags] dir",
	Short: "Tokenize every .js and .mjs file under a directory",
	Long:  `Tokenize-dir lexes all ECMAScript files under dir in parallel and prints a per-file summary`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenizeDir,
}

func init() {
	addLexerFlags(tokenizeDirCmd)
	tokenizeDirCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	tokenizeDirCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	tokenizeDirCmd.Flags().Bool("tokens", false, "include the tokens of every file in the output")
}

func runTokenizeDir(cmd *cobra.Command, args []string) error {
	dir := args[0]
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
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	withTokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}
	s.opts.Jobs = jobs

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if shouldUseTUI(mode, s.quiet) {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return fmt.Errorf("failed to walk %s: %w", dir, listErr)
		}
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), dir, files, s.opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, s.opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	all := diag.NewBag(0)
	for _, r := range results {
		all.Merge(r.Bag)
	}
	if err := writeDiagnostics(os.Stderr, s, all, fileSet); err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	formatIdx := s.timer.Begin("format")
	if err := writeDirResults(out, s.cfg.Output.Format, fileSet, results, withTokens); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	s.timer.End(formatIdx, fmt.Sprintf("%d files", len(results)))

	printTimings(cmd.ErrOrStderr(), s.timer)
	if all.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func writeDirResults(w io.Writer, format string, fs *source.FileSet, results []driver.TokenizeDirResult, withTokens bool) error {
	if format == config.FormatPretty {
		for _, r := range results {
			path := r.Path
			if f := fs.Get(r.FileID); f != nil {
				path = f.FormatPath("relative", fs.BaseDir())
			}
			if _, err := fmt.Fprintf(w, "%s: %d tokens, %d diagnostics\n", path, len(r.Tokens), r.Bag.Len()); err != nil {
				return err
			}
			if withTokens {
				if err := diagfmt.FormatTokensPretty(w, r.Tokens); err != nil {
					return err
				}
			}
		}
		return nil
	}

	files := make([]diagfmt.FileTokensOutput, 0, len(results))
	for _, r := range results {
		files = append(files, diagfmt.NewFileTokensOutput(r.Path, r.Tokens, r.Bag.Len(), withTokens))
	}
	switch format {
	case config.FormatJSON:
		return diagfmt.FormatFilesJSON(w, files)
	case config.FormatMsgpack:
		return diagfmt.FormatFilesMsgpack(w, files)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
