package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/version"
)

const replHistoryFile = ".latexp_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive formula parser",
	Long: `Starts an interactive read-eval-print loop.

Each line is parsed and rendered back in canonical form.

Commands:
  :tree    Toggle syntax tree output
  :stats   Toggle node/depth statistics
  :help    Show help
  :quit    Exit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := logic.New(logic.Options{
		MaxInputLength: cfg.Engine.MaxInputLength,
		Strict:         cfg.Engine.Strict,
		CollectStats:   true,
	})
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		printError("history store unavailable, recording disabled", err)
	}
	var recorder *history.Writer
	if store != nil {
		recorder = history.NewWriter(store, history.WriterConfig{
			BatchSize:   cfg.History.BatchSize,
			FlushPeriod: cfg.History.FlushPeriod,
		})
		defer func() {
			recorder.Close()
			store.Close()
		}()
	}

	fmt.Printf("%s %s - formula REPL (:help for commands)\n", version.ServiceName, version.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, replHistoryFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	showTree := false
	showStats := false

	for {
		line, err := ln.Prompt("latexp> ")
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
			fmt.Println()
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			switch strings.ToLower(line) {
			case ":quit", ":q", ":exit":
				return nil
			case ":tree":
				showTree = !showTree
				fmt.Printf("tree output %s\n", onOff(showTree))
			case ":stats":
				showStats = !showStats
				fmt.Printf("stats output %s\n", onOff(showStats))
			case ":help", ":h":
				fmt.Println("  :tree    Toggle syntax tree output")
				fmt.Println("  :stats   Toggle node/depth statistics")
				fmt.Println("  :quit    Exit")
			default:
				fmt.Printf("unknown command %q. Type :help for commands.\n", line)
			}
			continue
		}

		ln.AppendHistory(line)

		results := engine.ParseAll([]string{line})
		res := results[0]

		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", res.Err)
		} else {
			fmt.Println(res.Rendered)
			if showStats {
				fmt.Printf("  nodes: %d, depth: %d, time: %s\n", res.Nodes, res.Depth, res.Duration)
			}
			if showTree {
				fmt.Print(ast.Tree(res.Formula))
			}
		}

		if recorder != nil {
			rec := &history.Record{
				Source:   history.SourceREPL,
				Input:    res.Input,
				OK:       res.Err == nil,
				Rendered: res.Rendered,
				Nodes:    res.Nodes,
				Depth:    res.Depth,
				Duration: res.Duration,
			}
			if res.Err != nil {
				rec.Error = res.Err.Error()
			}
			recorder.Record(rec)
		}
	}

	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
