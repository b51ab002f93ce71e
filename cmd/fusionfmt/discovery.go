package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrNoFilesFound     = errors.New("no NC files found")
	ErrInvalidExtension = errors.New("file has no recognized NC extension")
)

// FileToFormat represents a single file to process.
type FileToFormat struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all NC files to format. A file input is taken as-is
// after an extension check; a directory is walked recursively.
func discoverFiles(inputPath string, params *runParams) ([]FileToFormat, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateExtension(inputPath, params.extensions); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, "", params)
		return []FileToFormat{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToFormat
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !hasExtension(path, params.extensions) {
			return nil
		}
		files = append(files, FileToFormat{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, inputPath, params),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFilesFound, inputPath)
	}
	return files, nil
}

// resolveOutputPath determines the cleaned-file path for an input file:
// <outputDir>/<relative subdir>/<base><suffix><timestamp><ext>.
func resolveOutputPath(inputPath, baseInputDir string, params *runParams) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	name := base + params.suffix + params.timestamp + ext

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(params.outputDir, filepath.Dir(relPath), name)
		}
	}
	return filepath.Join(params.outputDir, name)
}

// validateExtension checks that the file has a recognized NC extension.
func validateExtension(path string, extensions []string) error {
	if !hasExtension(path, extensions) {
		return fmt.Errorf("%w: got %q, want one of %s", ErrInvalidExtension, filepath.Ext(path), strings.Join(extensions, ", "))
	}
	return nil
}

// hasExtension reports whether the path ends in one of the extensions.
func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
