package x86_64

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keurnel/assembler/architecture/x86_64"
	"github.com/keurnel/assembler/internal/asm"
	"github.com/keurnel/assembler/internal/assembler_context"
)

// AssembleFileCmd assembles a single-instruction-per-line x86-64 source file
// into machine code, printing one hex-encoded line of bytes per assembled
// statement.
var AssembleFileCmd = &cobra.Command{
	Use:     "assemble-file <assembly-file>",
	GroupID: "file-operations",
	Short:   "Assemble an x86-64 assembly file into machine code.",
	Long:    `Assemble an x86-64 assembly file, one instruction statement per line, into machine code.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssembleFile(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	AssembleFileCmd.Flags().BoolP("verbose", "v", false, "print diagnostic entries alongside the assembled bytes")
	AssembleFileCmd.Flags().StringP("output", "o", "", "write hex-encoded bytes to this path instead of stdout")
	AssembleFileCmd.Flags().Bool("lower", true, "case-fold each source line before tokenizing")
	AssembleFileCmd.Flags().Bool("no-lower", false, "disable --lower; encode statements using their source casing as-is")
}

// runAssembleFile resolves the source file, encodes every statement line,
// and prints the assembled bytes (and, with --verbose, the diagnostics
// accumulated along the way).
func runAssembleFile(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	source, err := readSourceFile(fullPath)
	if err != nil {
		return err
	}

	lower, _ := cmd.Flags().GetBool("lower")
	noLower, _ := cmd.Flags().GetBool("no-lower")
	if noLower {
		lower = false
	}

	architecture := x86_64.AssemblerNew(source)
	ctx := assembler_context.New(architecture, fullPath)

	results, err := AssembleSource(ctx, source, lower)
	if err != nil {
		return err
	}

	var out strings.Builder
	for _, line := range results {
		out.WriteString(hex.EncodeToString(line))
		out.WriteByte('\n')
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		cmd.Print(out.String())
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		for _, entry := range ctx.Debug.Entries() {
			cmd.Println(entry.String())
		}
	}

	if ctx.Debug.HasErrors() {
		return fmt.Errorf("assembly failed with %d error(s)", len(ctx.Debug.Errors()))
	}

	return nil
}

// AssembleSource tokenizes and encodes every instruction statement in
// source, recording one diagnostic entry per line that fails to encode.
// Lines that are empty, comments, or directives are skipped. When lower is
// true, each statement is case-folded before tokenizing, so uppercase or
// mixed-case source (e.g. "MOV RAX, RBX") still matches the lowercase form
// table the encoder is built against. The returned slice holds one
// machine-code byte slice per successfully encoded line.
func AssembleSource(ctx *assembler_context.AssemblerContext, source string, lower bool) ([][]byte, error) {
	architecture, ok := ctx.Architecture.(*x86_64.Assembler)
	if !ok {
		return nil, fmt.Errorf("assembler_context: architecture is not an x86_64 assembler")
	}

	var encoded [][]byte
	lines := strings.Split(source, "\n")

	for i, raw := range lines {
		lineNumber := i + 1
		characteristics := asm.LineAnalyze(raw)
		if characteristics.IsEmpty || characteristics.IsComment || characteristics.IsDirective {
			continue
		}

		statement := asm.PreProcessingRemoveComments(raw)
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if lower {
			statement = strings.ToLower(statement)
		}

		tokens := asm.TokenizeStatement(statement)
		result, err := architecture.EncodeStatement(tokens)
		if err != nil {
			ctx.Debug.Error(ctx.Debug.Loc(lineNumber, 0), err.Error()).WithSnippet(statement)
			continue
		}

		encoded = append(encoded, result.Bytes)
	}

	return encoded, nil
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the assembly file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no assembly file provided")
	}
	if args[0] == "" {
		return "", fmt.Errorf("assembly file path is empty")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := filepath.Join(cwd, args[0])
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("assembly file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// readSourceFile reads the assembly source file and returns its content.
func readSourceFile(path string) (string, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read assembly file: %w", err)
	}
	return string(sourceBytes), nil
}
