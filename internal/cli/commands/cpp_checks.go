package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/pkg/check"
	"github.com/97gamjak/devops/pkg/gitx"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of file system events into one
// re-check.
const watchDebounce = 100 * time.Millisecond

// CppChecksOptions holds options for the cpp-checks command.
type CppChecksOptions struct {
	Disable []string
	Jobs    int
	Staged  bool
	Watch   bool
}

// NewCppChecksCommand creates the cpp-checks command.
func NewCppChecksCommand() *cobra.Command {
	opts := &CppChecksOptions{}
	cmd := &cobra.Command{
		Use:     "cpp-checks [dirs...]",
		Aliases: []string{"cpp_checks"},
		Short:   "Run the hygiene rules over C/C++ files",
		Long: `Check every C/C++ header and source file below the given
directories (default: the working directory) against the active
hygiene rules and report violations per file.

The command exits with code 1 when any violation is found, 0 when
every file passes.`,
		Example: `  # Check the whole tree
  devops cpp-checks

  # Check specific directories with four workers
  devops cpp-checks include src --jobs 4

  # Check only files staged in git
  devops cpp-checks --staged

  # Re-check automatically on changes
  devops cpp-checks --watch

  # Skip the keyword order rule
  devops cpp-checks --disable KW01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")
			if !cmd.Flags().Changed("jobs") {
				opts.Jobs = cmdCtx.Cfg.Cpp.Jobs
			}
			if cmdCtx.Cfg.Cpp.CheckOnlyStagedFiles {
				opts.Staged = true
			}

			if opts.Watch {
				return watchChecks(cmd, cmdCtx, opts, args)
			}

			report, err := runChecks(cmd.Context(), cmdCtx, opts, args)
			if err != nil {
				return err
			}
			if err := renderReport(cmdCtx, report); err != nil {
				return err
			}
			if report.Failed() {
				return fmt.Errorf("%d rule violations found", report.ViolationCount())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Concurrent file checks (default: cpp.jobs)")
	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Check only files staged in the git index")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-run the checks when files change")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")

	return cmd
}

// runChecks resolves the targets and runs the engine once.
func runChecks(ctx context.Context, cmdCtx *CommandContext, opts *CppChecksOptions, dirs []string) (*check.Report, error) {
	cfg := cmdCtx.Cfg

	ruleCfg, err := buildRuleConfig(cfg, opts.Disable)
	if err != nil {
		return nil, err
	}
	codec, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	targets, err := resolveTargets(ctx, cmdCtx, opts.Staged, dirs)
	if err != nil {
		return nil, err
	}

	engine, err := check.NewEngine(check.Params{
		Config:     ruleCfg,
		Codec:      codec,
		Logger:     cmdCtx.Logger,
		Jobs:       opts.Jobs,
		SkipMacros: cfg.Exclude.BuggyCppMacros,
	})
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx, targets)
}

// resolveTargets expands the requested directories, or the git index
// in staged mode, into check targets.
func resolveTargets(ctx context.Context, cmdCtx *CommandContext, staged bool, dirs []string) ([]check.Target, error) {
	resolver, err := newResolver(cmdCtx.Cfg)
	if err != nil {
		return nil, err
	}
	if staged {
		client := &gitx.Client{Logger: cmdCtx.GitLog}
		paths, err := client.StagedFiles(ctx)
		if err != nil {
			return nil, err
		}
		return resolver.TargetsFromPaths(paths)
	}
	return resolver.Resolve(dirs...)
}

// watchChecks runs the checks, then re-runs them whenever a matching
// file changes, until interrupted.
func watchChecks(cmd *cobra.Command, cmdCtx *CommandContext, opts *CppChecksOptions, dirs []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		report, err := runChecks(ctx, cmdCtx, opts, dirs)
		if err != nil {
			cmdCtx.Renderer.Errorf("%v", err)
			return
		}
		if err := renderReport(cmdCtx, report); err != nil {
			cmdCtx.Renderer.Errorf("%v", err)
		}
	}
	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	roots := dirs
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, root := range roots {
		if err := watchDirs(watcher, root, cmdCtx.Cfg.Exclude.Dirs); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	}

	cmdCtx.Renderer.Printf("Watching for changes, press Ctrl+C to stop\n")

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !matchesExtension(cmdCtx.Cfg, event.Name) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				cmdCtx.Logger.Debug("change detected", "path", filepath.Base(event.Name))
				runOnce()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watcher error", "error", err)
		}
	}
}

// watchDirs recursively registers every non-ignored directory below
// root with the watcher.
func watchDirs(watcher *fsnotify.Watcher, root string, ignoreDirs []string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		for _, ignored := range ignoreDirs {
			if d.Name() == ignored && path != root {
				return filepath.SkipDir
			}
		}
		return watcher.Add(path)
	})
}

func matchesExtension(cfg *config.Config, name string) bool {
	ext := filepath.Ext(name)
	for _, e := range cfg.File.HeaderExtensions {
		if ext == e {
			return true
		}
	}
	for _, e := range cfg.File.SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
