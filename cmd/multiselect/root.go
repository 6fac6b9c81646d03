package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"multiselect/internal/catalog"
	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui"
)

const defaultMessage = "Select options"

// options holds the parsed command-line flags for the prompt
type options struct {
	message    string
	pairs      []string
	file       string
	defaults   []string
	required   bool
	min        int
	max        int
	output     string
	labels     bool
	configPath string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "multiselect [flags] [option...]",
		Short: "Ask the user to pick any number of options",
		Long: `multiselect - an interactive checkbox prompt for scripts

Options come from positional arguments, repeated --option key=label flags
or a YAML, TOML or JSON file. The prompt is drawn on /dev/tty and the
selected keys are written to stdout, one per line.

Keys:
  ↑/k ↓/j   move (wraps around)
  space     toggle the highlighted option
  enter     submit
  esc       cancel
  ?         help

Exit status is 0 when a selection is submitted, 1 when the prompt is
cancelled and 2 on errors.`,
		Example: `  multiselect Red Green Blue
  multiselect -m "Deploy to" -o eu=Europe -o us="United States" -d eu
  multiselect -f regions.yaml --min 1 --max 2 --output json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.message, "message", "m", defaultMessage, "prompt message")
	flags.StringArrayVarP(&opts.pairs, "option", "o", nil, "option as key=label (repeatable)")
	flags.StringVarP(&opts.file, "file", "f", "", "read options from a YAML, TOML or JSON file")
	flags.StringArrayVarP(&opts.defaults, "default", "d", nil, "preselect a key (repeatable)")
	flags.BoolVar(&opts.required, "required", false, "refuse to submit an empty selection")
	flags.IntVar(&opts.min, "min", 0, "minimum number of selected options")
	flags.IntVar(&opts.max, "max", 0, "maximum number of selected options (0 for no limit)")
	flags.StringVar(&opts.output, "output", outputLines, "output format: lines or json")
	flags.BoolVar(&opts.labels, "labels", false, "print labels instead of keys")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append debug logs to this file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// buildCatalog picks the single option source the user supplied
func buildCatalog(opts *options, args []string) (*catalog.Catalog, error) {
	sources := 0
	for _, set := range []bool{opts.file != "", len(opts.pairs) > 0, len(args) > 0} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, fmt.Errorf("no options given: pass them as arguments, with --option or with --file")
	case sources > 1:
		return nil, fmt.Errorf("use only one of --file, --option or positional options")
	}

	switch {
	case opts.file != "":
		return catalog.LoadFile(opts.file)
	case len(opts.pairs) > 0:
		pairs, err := catalog.ParsePairs(opts.pairs)
		if err != nil {
			return nil, err
		}
		return catalog.FromPairs(pairs)
	default:
		return catalog.FromList(args)
	}
}

// buildPrompt validates flags and assembles the prompt description
func buildPrompt(opts *options, args []string) (ui.Prompt, error) {
	if err := checkOutput(opts.output); err != nil {
		return ui.Prompt{}, err
	}

	validate, err := buildValidator(opts.required, opts.min, opts.max)
	if err != nil {
		return ui.Prompt{}, err
	}

	choices, err := buildCatalog(opts, args)
	if err != nil {
		return ui.Prompt{}, err
	}

	return ui.Prompt{
		Message:  opts.message,
		Options:  choices,
		Defaults: opts.defaults,
		Validate: validate,
	}, nil
}

// loadConfig reads the config file, or the defaults when there is none
func loadConfig(path string, bus eventbus.EventBus) (*config.Config, error) {
	cfg, err := config.NewConfigServiceWithBus(path, bus).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path, or discards it so log
// lines never land on the prompt
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }, nil
}

// subscribeLifecycleLog writes prompt lifecycle events to the log
func subscribeLifecycleLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventPromptStarted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.PromptStartedEvent)
		log.Printf("Prompt %s started: %q, %d options, defaults %v", ev.Session.ID, ev.Session.Message, ev.Options, ev.Defaults)
	})
	bus.Subscribe(eventbus.EventValidationFailed, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ValidationFailedEvent)
		log.Printf("Prompt %s: validation failed for %v: %v", ev.Session.ID, ev.Values, ev.Err)
	})
	bus.Subscribe(eventbus.EventPromptSubmitted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.PromptSubmittedEvent)
		log.Printf("Prompt %s submitted %v after %s", ev.Session.ID, ev.Values, ev.Session.Elapsed())
	})
	bus.Subscribe(eventbus.EventPromptCancelled, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.PromptCancelledEvent)
		log.Printf("Prompt %s cancelled after %s", ev.Session.ID, ev.Session.Elapsed())
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		log.Printf("Config loaded from %s", e.(eventbus.ConfigLoadedEvent).Path)
	})
}

func runPrompt(cmd *cobra.Command, opts *options, args []string) error {
	// Keep the default logger quiet until we know where it should go
	log.SetOutput(io.Discard)

	prompt, err := buildPrompt(opts, args)
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := loadConfig(opts.configPath, bus)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if opts.logFile != "" {
		logPath = opts.logFile
	}
	closeLog, err := setupLogging(logPath)
	if err != nil {
		return err
	}
	defer func() {
		// Flush lifecycle events before the log file goes away
		bus.Close()
		closeLog()
	}()
	subscribeLifecycleLog(bus)

	if err := checkTERM(); err != nil {
		return err
	}

	// Open /dev/tty for TUI input/output since stdout carries the result
	tty, err := openTTY()
	if err != nil {
		return err
	}
	defer tty.Close()

	// stdout is usually a pipe here, so detect colors from the real tty
	lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())

	model, err := ui.NewModel(bus, cfg, prompt)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{
		tea.WithInput(tty),
		tea.WithOutput(tty),
	}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if !model.Accepted() {
		return errCancelled
	}

	values := model.Result()
	if opts.labels {
		values = model.Labels()
	}
	return writeResult(cmd.OutOrStdout(), opts.output, values)
}
