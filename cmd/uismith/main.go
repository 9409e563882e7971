// uismith generates UI component code against a project's real component
// vocabulary: it discovers which components exist, validates generated
// artifacts against that authoritative set, and regenerates until the
// output is valid or the attempt budget runs out.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"uismith/internal/config"
	"uismith/internal/discovery"
	"uismith/internal/generate"
	"uismith/internal/heal"
	"uismith/internal/logging"
	"uismith/internal/store"
	"uismith/internal/suggest"
	"uismith/internal/symbol"
	"uismith/internal/syntax"
	"uismith/internal/validate"
	"uismith/internal/watch"
)

var (
	// Global flags
	verbose   bool
	workspace string
	apiKey    string
	noCache   bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "uismith",
	Short: "uismith - guarantee-and-repair engine for generated UI code",
	Long: `uismith discovers the components a project can actually render,
validates LLM-generated UI code against that authoritative set, and
self-heals invalid output through bounded corrective regeneration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot determine workspace: %w", err)
			}
			workspace = wd
		}

		var err error
		cfg, err = config.LoadFromProject(workspace)
		if err != nil {
			return err
		}

		logCfg := cfg.Logging
		if verbose {
			logCfg.DebugMode = true
			logCfg.Level = "debug"
		}
		if err := logging.Initialize(workspace, logCfg); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover the project's components and print the resolved registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%d components (built %s)\n\n",
			registry.Len(), registry.BuiltAt().Format(time.RFC3339))
		for _, rec := range registry.Records() {
			fmt.Printf("  %-28s %-12s %s\n", rec.Name, rec.Category, rec.SourcePath)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a UI artifact against the component registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}

		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			return err
		}

		validator, closeChecker := newValidator(registry)
		defer closeChecker()

		errs := validator.Validate(string(code))
		if errs.Empty() {
			fmt.Printf("%s: valid\n", args[0])
			return nil
		}

		fmt.Printf("%s: %d errors\n", args[0], errs.Total())
		printErrors("syntax", errs.Syntax)
		printErrors("pattern", errs.Pattern)
		printErrors("import", errs.Import)
		for unknown, hint := range suggest.Map(unknownsFrom(errs.Import), registry.Names()) {
			fmt.Printf("  hint: did you mean %s instead of %s?\n", hint, unknown)
		}
		return fmt.Errorf("validation failed")
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate component code and self-heal it until valid",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request := args[0]

		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			return err
		}

		key := apiKey
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		if key == "" {
			key = cfg.LLM.APIKey
		}

		ctx := cmd.Context()
		if timeout, err := time.ParseDuration(cfg.LLM.Timeout); err == nil && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		client, err := generate.NewGenAIClient(ctx, key, cfg.LLM.Model)
		if err != nil {
			return err
		}

		framework := cfg.Healing.Framework
		raw, err := client.CompleteWithSystem(ctx,
			generate.SystemPrompt(framework),
			generate.BuildGenerationPrompt(request, registry.Names()))
		if err != nil {
			return fmt.Errorf("initial generation failed: %w", err)
		}
		initial := generate.ExtractCodeBlock(raw, generate.CodeBlockLang(framework))

		validator, closeChecker := newValidator(registry)
		defer closeChecker()

		controller := heal.NewController(client, validator, registry.Names(), framework)
		result := controller.Heal(ctx, initial, cfg.Healing.MaxAttempts)

		fmt.Println(result.Code)
		if !result.Success {
			fmt.Fprintf(os.Stderr, "\ngenerated with warnings after %d attempts:\n", result.Attempts)
			for _, e := range result.FinalErrors.Flatten() {
				fmt.Fprintf(os.Stderr, "  %s\n", e)
			}
		}
		return nil
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the registry cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache()
		if err != nil {
			return err
		}
		defer cache.Close()

		if err := cache.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("registry cache cleared")
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch component directories and invalidate the cache on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache()
		if err != nil {
			return err
		}
		defer cache.Close()

		d := discovery.NewDiscoverer(workspace, cfg.Discovery)
		var dirs []string
		for _, src := range d.Sources() {
			if src.Kind == discovery.SourceLocalDir {
				dirs = append(dirs, src.Path)
			}
		}
		if len(dirs) == 0 {
			return fmt.Errorf("no component directories to watch")
		}

		watcher, err := watch.New(workspace, dirs, cfg.Discovery.FilePatterns, cache)
		if err != nil {
			return err
		}
		if err := watcher.Start(cmd.Context()); err != nil {
			return err
		}
		defer watcher.Stop()

		fmt.Printf("watching %d directories, ctrl-c to stop\n", len(dirs))
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

// buildRegistry loads the cached registry for the workspace or runs a
// discovery pass and caches the result.
func buildRegistry(ctx context.Context) (*symbol.Registry, error) {
	if !noCache {
		cache, err := openCache()
		if err != nil {
			return nil, err
		}
		defer cache.Close()

		if registry, ok, err := cache.Load(ctx, workspace); err != nil {
			return nil, err
		} else if ok {
			return registry, nil
		}

		registry, err := discovery.NewDiscoverer(workspace, cfg.Discovery).Discover(ctx)
		if err != nil {
			return nil, err
		}
		if err := cache.Save(ctx, workspace, registry); err != nil {
			logging.Get(logging.CategoryStore).Warn("could not cache registry: %v", err)
		}
		return registry, nil
	}

	return discovery.NewDiscoverer(workspace, cfg.Discovery).Discover(ctx)
}

func openCache() (*store.Cache, error) {
	path := cfg.Cache.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(workspace, path)
	}
	return store.Open(path, cfg.Cache.TTL)
}

// newValidator wires the tree-sitter syntax checker and the forbidden
// pattern checker for the configured framework. The returned func
// releases the parser.
func newValidator(registry *symbol.Registry) (*validate.Validator, func()) {
	checker := syntax.NewTreeChecker(cfg.Healing.Framework)
	v := validate.New(registry,
		validate.WithSyntaxChecker(checker),
		validate.WithPatternChecker(syntax.NewPatternChecker()),
		validate.WithFramework(validate.Framework(cfg.Healing.Framework)),
		validate.WithComponentPrefix(cfg.Discovery.ComponentPrefix),
	)
	return v, checker.Close
}

func printErrors(kind string, errors []string) {
	for _, e := range errors {
		fmt.Printf("  [%s] %s\n", kind, e)
	}
}

func unknownsFrom(importErrors []string) []string {
	names := make([]string, 0, len(importErrors))
	for _, e := range importErrors {
		if fields := strings.Fields(e); len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Skip the registry cache")

	cacheCmd.AddCommand(cacheClearCmd)

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
