package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"flowline/internal/config"
	"flowline/internal/ledger"
	"flowline/internal/logging"
	"flowline/internal/outputs"
	"flowline/internal/pipeline"
	"flowline/internal/runlock"
	"flowline/internal/selection"
	"flowline/internal/steps"
)

func builtinSteps() []pipeline.Step {
	return []pipeline.Step{
		steps.NewIntake(),
		steps.NewAnalysis(),
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var outputsFlag string
	var skipOutputsFlag string
	var ignoreQuestions bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [STEP ...]",
		Short: "Execute the pipeline, or only the named steps",
		Long: `Execute the configured pipeline steps in order. Positional arguments
select individual steps by ID prefix. The --outputs and --skip-outputs
flags take comma-separated pattern lists, optionally scoped per step as
step:pattern, and override the configured selection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			selected, err := pipeline.Filter(builtinSteps(), args)
			if err != nil {
				return err
			}

			selector := selectorFromConfig(cfg)
			if cmd.Flags().Changed("outputs") {
				selector.Generate = explicitSpec(outputsFlag)
			}
			if cmd.Flags().Changed("skip-outputs") {
				selector.Skip = explicitSpec(skipOutputsFlag)
			}

			if dryRun {
				return previewRun(cmd.OutOrStdout(), cfg, selected, selector)
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			lock, err := runlock.Acquire(cfg.Paths.DerivativesRoot)
			if err != nil {
				if errors.Is(err, runlock.ErrHeld) {
					return fmt.Errorf("%w; wait for the other run to finish", err)
				}
				return err
			}
			defer lock.Release()

			store, err := ledger.Open(cfg.Paths.DerivativesRoot)
			if err != nil {
				return err
			}
			defer store.Close()

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			runner, err := pipeline.NewRunner(pipeline.RunnerOptions{
				Config:   cfg,
				Steps:    selected,
				Selector: selector,
				Confirm:  overwritePrompt(ignoreQuestions, cmd.OutOrStdout()),
				Recorder: store,
				Version:  buildVersion,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&outputsFlag, "outputs", "", "Comma-separated output patterns to generate (step:pattern to scope)")
	cmd.Flags().StringVar(&skipOutputsFlag, "skip-outputs", "", "Comma-separated output patterns to skip (step:pattern to scope)")
	cmd.Flags().BoolVar(&ignoreQuestions, "ignore-questions", false, "Never prompt; overwrite questions are answered no")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show which outputs the run would generate without writing anything")
	return cmd
}

func selectorFromConfig(cfg *config.Config) selection.Selector {
	return selection.Selector{
		Generate: cfg.GenerateSpec(),
		Skip:     cfg.SkipSpec(),
	}
}

// explicitSpec parses a flag value the operator passed. Unlike an
// unset flag, an explicitly empty value is a present spec that selects
// nothing.
func explicitSpec(value string) selection.Spec {
	spec := selection.ParseList(value)
	if !spec.Present() {
		return selection.Flat()
	}
	return spec
}

// overwritePrompt builds the ask-mode confirmation. With
// --ignore-questions or a non-interactive stdin every question is
// answered no.
func overwritePrompt(ignoreQuestions bool, out io.Writer) outputs.ConfirmFunc {
	if ignoreQuestions {
		return nil
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	var alwaysYes, alwaysNo bool
	return func(path string) bool {
		if alwaysYes {
			return true
		}
		if alwaysNo {
			return false
		}
		for {
			fmt.Fprintf(out, "Overwrite %s? [y]es/[n]o/[a]lways/ne[v]er: ", path)
			line, err := reader.ReadString('\n')
			if err != nil {
				return false
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return true
			case "n", "no", "":
				return false
			case "a", "always":
				alwaysYes = true
				return true
			case "v", "never":
				alwaysNo = true
				return false
			}
		}
	}
}

// previewRun resolves the selection decision and target path for every
// declared output without touching the filesystem.
func previewRun(out io.Writer, cfg *config.Config, selected []pipeline.Step, selector selection.Selector) error {
	registry, err := pipeline.BuildRegistry(selected)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, step := range selected {
		manager := outputs.NewManager(outputs.ManagerOptions{
			StepID:     step.ID(),
			Registry:   registry,
			Selector:   selector,
			OutputRoot: cfg.Paths.OutputRoot,
			Datatype:   cfg.Dataset.Datatype,
		})
		for _, decl := range registry.DeclarationsFor(step.ID()) {
			rows = append(rows, []string{
				step.ID(),
				decl.Name,
				yesNo(selector.ShouldGenerate(step.ID(), decl.Name, decl.EnabledByDefault)),
				manager.OutputPath(outputs.Request{Name: decl.Name}),
			})
		}
	}

	fmt.Fprintln(out, renderTable([]string{"Step", "Output", "Generate", "Path"}, rows))
	fmt.Fprintln(out, "Dry run: nothing was written.")
	return nil
}
