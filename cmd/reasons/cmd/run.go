package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aitzazisstuffed/reasons/internal/eval"
	"github.com/aitzazisstuffed/reasons/internal/explain"
	"github.com/aitzazisstuffed/reasons/internal/loader"
	"github.com/aitzazisstuffed/reasons/internal/runtime"
	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

var (
	configPath  string
	dumpTrace   bool
	dumpJSON    bool
	explainFlag string
	golfFlag    bool
	noGolfFlag  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a decision tree described as JSON",
	Long: `Load a tree description (spec §6's AST-producer interface) from a
JSON file, evaluate it, and optionally dump its execution trace and a
narrative explanation.

Examples:
  reasons run tree.json
  reasons run --golf --explain=full tree.json
  reasons run --dump-trace --explain=why-not tree.json`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	runCmd.Flags().BoolVar(&dumpTrace, "dump-trace", false, "print the execution trace after evaluation")
	runCmd.Flags().BoolVar(&dumpJSON, "dump-trace-json", false, "print the execution trace as JSON instead of plain text")
	runCmd.Flags().StringVar(&explainFlag, "explain", "", "explain the evaluation: why|why-not|full")
	runCmd.Flags().BoolVar(&golfFlag, "golf", false, "force golf mode on")
	runCmd.Flags().BoolVar(&noGolfFlag, "no-golf", false, "force golf mode off")
}

func runTree(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if golfFlag {
		cfg.GolfMode = true
	}
	if noGolfFlag {
		cfg.GolfMode = false
	}
	if explainFlag != "" {
		cfg.ExplanationsEnabled = true
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading tree file: %w", err)
	}

	root, err := loader.FromJSON(data)
	if err != nil {
		return fmt.Errorf("parsing tree: %w", err)
	}
	if err := ast.Validate(root); err != nil {
		return fmt.Errorf("invalid tree: %w", err)
	}

	env := runtime.New(cfg)
	registerDefaultConsequenceHandler(env)

	tr := trace.New()
	tr.SetGolfMode(cfg.GolfMode)

	var mode explain.Mode
	switch explainFlag {
	case "why-not":
		mode = explain.ModeWhyNot
	case "full":
		mode = explain.ModeFull
	default:
		mode = explain.ModeWhy
	}

	explainer := explain.New()
	evaluator := eval.New(env, tr, explainer)
	evaluator.ExplainMode = mode

	result := evaluator.EvalTree(root)

	fmt.Printf("result: %s\n", result.String())
	if env.HadError() {
		fmt.Fprintf(os.Stderr, "error: %s\n", env.ErrorMessage())
	}

	if dumpTrace {
		if dumpJSON {
			doc, err := tr.ExportJSON()
			if err != nil {
				return fmt.Errorf("exporting trace: %w", err)
			}
			fmt.Println(doc)
		} else {
			fmt.Print(tr.DumpPretty())
		}
	}

	if explainFlag != "" {
		fmt.Println("\n" + evaluator.LastExplanation())
	}

	if env.HadError() {
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

// registerDefaultConsequenceHandler wires a single catch-all handler that
// prints the consequence's action to stdout and always succeeds. Callers
// embedding the core register their own handlers instead; the CLI needs
// one so `run` produces observable output without a host application.
func registerDefaultConsequenceHandler(env *runtime.Env) {
	env.RegisterConsequenceHandler(ast.ConsequenceAny, func(e *runtime.Env, node *ast.Node) runtime.ConsequenceResult {
		fmt.Printf("consequence: %s\n", node.Action())
		return runtime.ConsequenceResult{Handled: true, Success: true}
	}, "cli-default")
}
