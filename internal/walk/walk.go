// Package walk implements the directory-walk primitive: a recursive listing
// of a directory tree that yields qualifier.FileRecord values for every
// candidate Markdown file, generalized from a note vault's file handler
// into the filter-chain contract distilled spec §6 describes.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
)

// DefaultMaxFileSize is the file-filter chain's size ceiling (10 MiB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// DefaultExtensions is the file-filter chain's default extension allow-list.
var DefaultExtensions = []string{
	"", "md", "markdown", "mdown", "mmd", "text", "txt",
	"rmarkdown", "mkd", "mdwn", "mdtxt", "rmd", "mdtext", "apib",
}

// DefaultExcludeDirs is the directory-filter chain's default skip-list.
var DefaultExcludeDirs = []string{".git", "node_modules"}

// Options configures one Walk call.
type Options struct {
	ExcludeDirs  []string
	ExcludeFiles []string
	Extensions   []string
	MaxFileSize  int64
}

// DefaultOptions returns the filter chain described in distilled spec §6.
func DefaultOptions() Options {
	return Options{
		ExcludeDirs: DefaultExcludeDirs,
		Extensions:  DefaultExtensions,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Result is one item produced by Walk: either a FileRecord or a terminal
// error (distilled spec §7: "the stream terminates on the first I/O
// error").
type Result struct {
	Record *qualifier.FileRecord
	Err    error
}

// Walk recursively lists dir, applying the directory- and file-filter
// chains, and streams a Result per surviving file over the returned
// channel. Suspension points (directory listing, stat, file read) all
// honor ctx, so a consumer that stops reading or cancels ctx bounds the walk
// to one file in flight (distilled spec §5). The channel closes once the
// walk completes, ctx is cancelled, or an I/O error has been sent.
func Walk(ctx context.Context, dir string, opts Options) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		extensions := opts.Extensions
		if extensions == nil {
			extensions = DefaultExtensions
		}
		exts := make(map[string]bool, len(extensions))
		for _, e := range extensions {
			exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
		}

		excludeDirs := opts.ExcludeDirs
		if excludeDirs == nil {
			excludeDirs = DefaultExcludeDirs
		}
		excludeDirSet := make(map[string]bool, len(excludeDirs))
		for _, d := range excludeDirs {
			excludeDirSet[d] = true
		}
		excludeFileSet := make(map[string]bool, len(opts.ExcludeFiles))
		for _, f := range opts.ExcludeFiles {
			excludeFileSet[f] = true
		}

		maxSize := opts.MaxFileSize
		if maxSize <= 0 {
			maxSize = DefaultMaxFileSize
		}

		err := filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if walkErr != nil {
				return walkErr
			}

			name := info.Name()
			if info.IsDir() {
				if path != dir && (strings.HasPrefix(name, ".") || excludeDirSet[name]) {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasPrefix(name, ".") || excludeFileSet[name] {
				return nil
			}

			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
			if !exts[ext] {
				return nil
			}
			if info.Size() >= maxSize {
				return nil
			}

			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return readErr
			}

			rec := &qualifier.FileRecord{
				Path: path,
				File: name,
				Stats: qualifier.FileStats{
					Size:  info.Size(),
					Mtime: info.ModTime().UnixMilli(),
				},
				Data: data,
			}

			select {
			case out <- Result{Record: rec}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

		if err != nil && err != context.Canceled {
			select {
			case out <- Result{Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}
