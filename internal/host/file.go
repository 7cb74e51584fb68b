// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extLanguages maps file extensions to editor language ids.
var extLanguages = map[string]string{
	".c":    "c",
	".h":    "c",
	".cc":   "cpp",
	".cpp":  "cpp",
	".cxx":  "cpp",
	".hh":   "cpp",
	".hpp":  "cpp",
	".py":   "python",
	".pyw":  "python",
	".java": "java",
	".cs":   "csharp",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".jsx":  "javascriptreact",
	".ts":   "typescript",
	".mts":  "typescript",
	".tsx":  "typescriptreact",
}

// LanguageForPath returns the editor language id for a file name. Unknown
// extensions return the bare extension, which the renderer treats as an
// unknown language.
func LanguageForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if id, ok := extLanguages[ext]; ok {
		return id
	}
	return strings.TrimPrefix(ext, ".")
}

// FileEditor edits a file on disk with the cursor at a fixed position.
type FileEditor struct {
	path     string
	language string
	content  string
	line     int // 1-based
	column   int // 1-based byte column
	selected string
}

// FileOption configures a FileEditor.
type FileOption func(*FileEditor)

// WithLanguage overrides the language derived from the file extension.
func WithLanguage(id string) FileOption {
	return func(e *FileEditor) {
		if id != "" {
			e.language = id
		}
	}
}

// WithSelection sets the selected text reported by the editor.
func WithSelection(text string) FileOption {
	return func(e *FileEditor) {
		e.selected = text
	}
}

// OpenFile reads path and places the cursor at line and column (both
// 1-based). A column past the end of the line places the cursor at the end.
func OpenFile(path string, line, column int, opts ...FileOption) (*FileEditor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	e := &FileEditor{
		path:     path,
		language: LanguageForPath(path),
		content:  string(data),
		line:     line,
		column:   column,
	}
	for _, opt := range opts {
		opt(e)
	}

	lines := strings.Count(e.content, "\n") + 1
	if line < 1 || line > lines {
		return nil, fmt.Errorf("line %d out of range (file has %d lines)", line, lines)
	}
	if column < 1 {
		return nil, fmt.Errorf("column must be at least 1, got %d", column)
	}
	return e, nil
}

func (e *FileEditor) LanguageID() string { return e.language }
func (e *FileEditor) Selection() string  { return e.selected }

// Indent returns the leading whitespace of the cursor line.
func (e *FileEditor) Indent() string {
	text := e.lineText()
	return text[:len(text)-len(strings.TrimLeft(text, " \t"))]
}

// Content returns the current document text.
func (e *FileEditor) Content() string { return e.content }

// Insert writes text at the cursor. The file is replaced through a temporary
// file and rename so readers never see a partial write.
func (e *FileEditor) Insert(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	offset := e.offset()
	updated := e.content[:offset] + text + e.content[offset:]

	if err := writeAtomic(e.path, []byte(updated)); err != nil {
		return err
	}
	e.content = updated
	return nil
}

// lineText returns the cursor line without its newline.
func (e *FileEditor) lineText() string {
	start := e.lineStart()
	end := strings.IndexByte(e.content[start:], '\n')
	if end < 0 {
		return strings.TrimSuffix(e.content[start:], "\r")
	}
	return strings.TrimSuffix(e.content[start:start+end], "\r")
}

// lineStart returns the byte offset of the cursor line.
func (e *FileEditor) lineStart() int {
	offset := 0
	for i := 1; i < e.line; i++ {
		next := strings.IndexByte(e.content[offset:], '\n')
		if next < 0 {
			return len(e.content)
		}
		offset += next + 1
	}
	return offset
}

// offset returns the byte offset of the cursor.
func (e *FileEditor) offset() int {
	start := e.lineStart()
	col := e.column - 1
	if n := len(e.lineText()); col > n {
		col = n
	}
	return start + col
}

func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
