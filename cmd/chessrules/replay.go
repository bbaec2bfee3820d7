// replay.go - Scripted game replay
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/replay"
	"github.com/lgbarn/chessrules/internal/worker"
)

// runReplay replays every script in files, or stdin if files is empty or
// "-", and writes one report per game to cfg.OutputFile.
func runReplay(cfg *config.Config, files []string, stdin io.Reader) (replay.Summary, error) {
	items, err := loadScripts(cfg, files, stdin)
	if err != nil {
		return replay.Summary{}, err
	}

	start := time.Now()
	r := replay.NewReplayer(cfg)
	reports := r.Run(items)

	w := output.NewReportWriter(cfg.OutputFile, cfg)
	for _, rep := range reports {
		if err := w.WriteReport(rep); err != nil {
			return replay.Summary{}, err
		}
	}
	if err := w.Close(); err != nil {
		return replay.Summary{}, err
	}

	summary := replay.Summarize(reports)
	cfg.Logf(1, "replayed %d of %d games in %v using %d workers\n",
		len(reports), len(items), time.Since(start).Round(time.Millisecond), cfg.Replay.Workers)
	if skipped := len(items) - len(reports); skipped > 0 {
		cfg.Logf(1, "%d games skipped after a failure\n", skipped)
	}
	return summary, nil
}

// loadScripts reads every script and numbers the games across all of them.
func loadScripts(cfg *config.Config, files []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	var items []worker.WorkItem
	for _, name := range files {
		var scripts []worker.WorkItem
		var err error
		if name == "-" {
			scripts, err = replay.ParseScript(stdin, "stdin", cfg.Replay.Phrases)
		} else {
			scripts, err = parseScriptFile(name, cfg.Replay.Phrases)
		}
		if err != nil {
			return nil, err
		}
		cfg.Logf(2, "%s: %d games\n", name, len(scripts))
		for _, item := range scripts {
			item.Index = len(items)
			items = append(items, item)
		}
	}
	return items, nil
}

func parseScriptFile(name string, phrases bool) ([]worker.WorkItem, error) {
	f, err := os.Open(name) //nolint:gosec // G304: script path is user-specified
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return replay.ParseScript(f, name, phrases)
}
