package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sprites/internal/catalog"
	"github.com/vovakirdan/tui-sprites/internal/config"
	"github.com/vovakirdan/tui-sprites/internal/sheet"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

// env is what every subcommand needs: resolved config, logger and
// vocabulary.
type env struct {
	cfg    config.Config
	logger *log.Logger
	vocab  *vocab.Vocabulary
}

// loadEnv loads the config and applies the global flag overrides.
func loadEnv(stderr io.Writer) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagVocab != "" {
		cfg.Vocabulary = flagVocab
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagStrict {
		cfg.Catalog.RequireComplete = true
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sprites",
		Level:           level,
	})

	v, err := loadVocabulary(cfg.Vocabulary)
	if err != nil {
		return nil, err
	}
	logger.Debug("environment ready", "vocabulary", v.Len(), "strict", cfg.Catalog.RequireComplete)

	return &env{cfg: cfg, logger: logger, vocab: v}, nil
}

// loadVocabulary reads a names file, or returns the built-in vocabulary for
// an empty path.
func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	if path == "" {
		return vocab.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}
	v, err := vocab.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// readSheet reads and decodes one descriptor file, picking the format from
// its extension.
func readSheet(path string) (*sheet.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := sheet.ParseFile(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// catalogOptions returns the builder options for this environment.
func (e *env) catalogOptions() []catalog.Option {
	opts := []catalog.Option{catalog.WithLogger(e.logger)}
	if e.cfg.Catalog.RequireComplete {
		opts = append(opts, catalog.RequireComplete())
	}
	return opts
}

// loadCatalog builds one catalog from every sheet in paths.
func (e *env) loadCatalog(paths []string) (*catalog.Catalog, error) {
	b := catalog.NewBuilder(e.vocab, e.catalogOptions()...)
	for _, path := range paths {
		doc, err := readSheet(path)
		if err != nil {
			return nil, err
		}
		if err := b.Add(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		e.logger.Debug("sheet loaded", "path", path, "tags", len(doc.Meta.FrameTags))
	}
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	e.logger.Info("catalog built", "sheets", len(paths), "animations", c.Len())
	return c, nil
}

// exitOnError prints err and exits when it is non-nil.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
