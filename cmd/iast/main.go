// Package main is the iast CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/chat"
	"github.com/SolarisSy/iast/internal/config"
	"github.com/SolarisSy/iast/internal/corpus"
	"github.com/SolarisSy/iast/internal/extract"
	"github.com/SolarisSy/iast/internal/index"
	"github.com/SolarisSy/iast/internal/ingest"
	"github.com/SolarisSy/iast/internal/provider"
	"github.com/SolarisSy/iast/internal/retriever"
	"github.com/SolarisSy/iast/internal/server"
	"github.com/SolarisSy/iast/internal/vectorstore"
	"github.com/SolarisSy/iast/internal/watcher"
	"github.com/SolarisSy/iast/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/iast/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so "iast server" from the project dir picks up the project's
// config. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	// Provider credentials usually live in a .env during development.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ingest":
		runIngest()
	case "ask":
		runAsk()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("iast version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`iast - mentor de estudos com base de conhecimento própria

Usage:
  iast server [-config path] [-debug]   start the HTTP API
  iast ingest [-config path] [-debug]   rebuild the vector index from the corpus
  iast ask [-config path] <pergunta>    ask a single question from the terminal
  iast status [-config path]            show index status
  iast version                          print version
  iast help                             show this help
`)
}

func setup(fs *flag.FlagSet) (*config.Config, *zap.Logger, bool) {
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded",
		zap.String("config_path", resolvedPath),
		zap.Bool("debug", debugMode),
	)
	return cfg, logger, debugMode
}

func runServer() {
	cfg, logger, debugMode := setup(flag.NewFlagSet("server", flag.ExitOnError))
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Corpus.Watch {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		pipeline := components.Pipeline
		watchSvc := watcher.NewWatcher(cfg.Corpus.Path, cfg.Corpus.Extensions, func() {
			if _, err := pipeline.Run(context.Background()); err != nil {
				if ingest.IsConcurrentRun(err) {
					logger.Info("corpus changed during an active ingestion, skipping")
					return
				}
				logger.Warn("watch-triggered ingestion failed", zap.Error(err))
			}
		}, watchOpts...)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(
		components.Engine,
		components.Pipeline,
		components.Cache,
		&cfg.Server,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runIngest() {
	cfg, logger, _ := setup(flag.NewFlagSet("ingest", flag.ExitOnError))
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	result, err := components.Pipeline.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ingestion failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Ingestion complete: %d documents, %d chunks indexed\n", result.Documents, result.Chunks)
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	cfg, logger, _ := setup(fs)
	defer logger.Sync()

	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "Usage: iast ask <pergunta>")
		os.Exit(1)
	}

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	resp, err := components.Engine.Respond(context.Background(), question, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(resp.Reply)
	if resp.Document != nil {
		fmt.Printf("\n%s\n\n%s\n", resp.Document.Title, resp.Document.Content)
	}
}

func runStatus() {
	cfg, logger, _ := setup(flag.NewFlagSet("status", flag.ExitOnError))
	defer logger.Sync()

	store := vectorstore.NewStore(cfg.Index.Path, logger)
	cache := index.NewCache(store, logger)
	ix, err := cache.Get(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	if ix == nil {
		fmt.Println("Index: not trained (run 'iast ingest')")
		return
	}
	fmt.Printf("Index: trained\n  chunks:     %d\n  sources:    %d\n  dimensions: %d\n  path:       %s\n",
		ix.Size(), ix.SourceCount(), ix.Dimensions(), store.Path())
}

// Components holds the wired application services.
type Components struct {
	Store    *vectorstore.Store
	Cache    *index.Cache
	Pipeline *ingest.Pipeline
	Engine   *chat.Engine
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	client, err := provider.NewClient(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	store := vectorstore.NewStore(cfg.Index.Path, logger)
	cache := index.NewCache(store, logger)

	loader := corpus.NewLoader(cfg.Corpus.Path, cfg.Corpus.Extensions, extract.NewExtractor(), logger)
	chunker := ingest.NewChunker(cfg.Index.ChunkSize, cfg.Index.ChunkOverlap)
	pipeline := ingest.NewPipeline(loader, chunker, store, cache, client, logger)

	ret := retriever.NewRetriever(cache, client, cfg.Index.TopK, logger)
	detector := chat.NewSummaryDetector(cfg.Chat.SummaryKeywords)
	engine := chat.NewEngine(client, ret, detector, cfg.Chat.HistoryLimit, logger)

	return &Components{
		Store:    store,
		Cache:    cache,
		Pipeline: pipeline,
		Engine:   engine,
	}, nil
}
