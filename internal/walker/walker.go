// SPDX-License-Identifier: MPL-2.0

// Package walker drives the preprocessor over a source tree: it
// enumerates eligible modules depth-first, runs each through the rewrite
// pipeline, and mirrors the results path-for-path under the destination
// root. Processing is strictly sequential; a filesystem error anywhere
// aborts the run, leaving already-written files in place.
package walker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"gsjsprep/internal/config"
	"gsjsprep/internal/diag"
	"gsjsprep/internal/issue"
	"gsjsprep/internal/rewrite"
)

// ErrSourceRootMissing is returned when the configured source root does
// not exist or is not a directory. The CLI treats it as fatal.
var ErrSourceRootMissing = errors.New("source root does not exist or is not a directory")

// Walker owns one preprocessing run over a filesystem.
type Walker struct {
	fs       afero.Fs
	cfg      *config.Config
	pipeline *rewrite.Pipeline
	logger   *log.Logger
	excluded map[string]struct{}
}

// New builds a walker over fs using the supplied configuration. The
// logger is threaded through to the pipeline for per-line trace output.
func New(fs afero.Fs, cfg *config.Config, logger *log.Logger) *Walker {
	excluded := make(map[string]struct{}, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[d] = struct{}{}
	}
	return &Walker{
		fs:       fs,
		cfg:      cfg,
		pipeline: rewrite.NewPipeline(cfg.GlobalExport, cfg.ModuleExport, cfg.GlobalAPI, logger),
		logger:   logger,
		excluded: excluded,
	}
}

// Run processes every eligible file under the source root. The missing
// source root precondition is checked before anything is written.
func (w *Walker) Run() error {
	src := w.cfg.SourceRoot
	dst := w.cfg.DestRoot

	ok, err := afero.DirExists(w.fs, src)
	if err != nil {
		return issue.NewContext().
			WithOperation("stat source root").
			WithResource(src).
			Wrap(err).
			BuildError()
	}
	if !ok {
		return issue.NewContext().
			WithOperation("open source root").
			WithResource(src).
			WithSuggestion("Pull a copy of the GSJS repository and point source_root at it").
			WithSuggestion("Check the source_root config value or the [source] argument").
			Wrap(ErrSourceRootMissing).
			BuildError()
	}

	w.logger.Info("processing GSJS files", "input", src, "output", dst)

	return afero.Walk(w.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return issue.NewContext().
				WithOperation("walk source tree").
				WithResource(path).
				Wrap(err).
				BuildError()
		}

		if info.IsDir() {
			if path == src {
				return nil
			}
			if _, skip := w.excluded[info.Name()]; skip {
				w.logger.Debug("skipping excluded directory", "dir", path)
				return filepath.SkipDir
			}
			w.logger.Info("processing directory", "dir", w.modulePath(path))
			return nil
		}

		modpath := w.modulePath(path)
		if !strings.HasSuffix(info.Name(), w.cfg.Extension) {
			w.logger.Debug("skipping file with non-matching extension", "file", modpath)
			return nil
		}
		return w.processModule(modpath, path)
	})
}

// modulePath converts an absolute-ish walk path into the slash-separated
// module path relative to the source root.
func (w *Walker) modulePath(path string) string {
	rel, err := filepath.Rel(w.cfg.SourceRoot, path)
	if err != nil {
		// Walk only yields paths under the root, so Rel cannot fail here;
		// fall back to the raw path if it somehow does.
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// processModule runs one module through the pipeline and emits the result
// at the mirrored destination path, overwriting any existing file.
func (w *Walker) processModule(modpath, srcPath string) error {
	category := w.pipeline.Classify(modpath)
	w.logger.Debug("processing", "module", modpath, "category", category.String())

	destPath := filepath.Join(w.cfg.DestRoot, filepath.FromSlash(modpath))
	// MkdirAll succeeds when the directory already exists.
	if err := w.fs.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return issue.NewContext().
			WithOperation("create destination directory").
			WithResource(filepath.Dir(destPath)).
			Wrap(err).
			BuildError()
	}

	data, err := afero.ReadFile(w.fs, srcPath)
	if err != nil {
		return issue.NewContext().
			WithOperation("read source module").
			WithResource(srcPath).
			Wrap(err).
			BuildError()
	}

	m := &rewrite.Module{
		Path:     modpath,
		Category: category,
		Lines:    splitLines(string(data)),
	}
	out := w.pipeline.Run(m)

	diag.Trace(w.logger, "writing", "file", destPath)
	var buf strings.Builder
	for _, line := range out {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := afero.WriteFile(w.fs, destPath, []byte(buf.String()), 0o644); err != nil {
		return issue.NewContext().
			WithOperation("write destination module").
			WithResource(destPath).
			Wrap(err).
			BuildError()
	}
	return nil
}

// splitLines splits file content into lines without their newline bytes.
// A trailing newline does not produce a phantom empty final line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
