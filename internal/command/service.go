// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package command implements the user actions: tracking a copied name and
// inserting one, a collection, or several buffered print statements.
//
// A Service owns the recent-variable buffer and runs one action at a time.
// Hosts construct a Service once and pass it to whatever dispatches actions.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/internal/config"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/ident"
	"github.com/albertocavalcante/dbgprint/internal/logging"
	"github.com/albertocavalcante/dbgprint/internal/notify"
	"github.com/albertocavalcante/dbgprint/internal/recent"
	"github.com/albertocavalcante/dbgprint/internal/render"
)

// Action names a user-triggered command.
type Action string

const (
	TrackCopy            Action = "track-copy"
	InsertPrint          Action = "insert-print"
	InsertArrayPrint     Action = "insert-array-print"
	InsertMultiplePrints Action = "insert-multiple-prints"
)

// Actions lists every action.
var Actions = []Action{TrackCopy, InsertPrint, InsertArrayPrint, InsertMultiplePrints}

// Request carries the collaborators for one action. Clipboard and Picker
// fall back to the Service defaults when nil.
type Request struct {
	Editor    host.Editor
	Clipboard host.Clipboard
	Picker    host.Picker
}

// Options configures a Service.
type Options struct {
	// MaxBufferSize caps the buffer; below 1 uses the default.
	MaxBufferSize int

	// Templates holds the override templates.
	Templates generator.Config

	// Clipboard and Picker are the defaults for requests that carry none.
	Clipboard host.Clipboard
	Picker    host.Picker

	// Notifier receives notices from Dispatch. Defaults to discarding them.
	Notifier notify.Notifier

	Logger *slog.Logger
}

// Service runs the user actions against a shared buffer.
type Service struct {
	mu       sync.Mutex // serializes actions
	buffer   *recent.Buffer
	renderer *render.Renderer

	clipboard host.Clipboard
	picker    host.Picker
	notifier  notify.Notifier
	logger    *slog.Logger

	subMu       sync.Mutex
	subscribers map[chan []string]struct{}
}

// New creates a Service with an empty buffer.
func New(opts Options) *Service {
	s := &Service{
		buffer:      recent.New(opts.MaxBufferSize),
		renderer:    render.New(opts.Templates),
		clipboard:   opts.Clipboard,
		picker:      opts.Picker,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
		subscribers: make(map[chan []string]struct{}),
	}
	if s.notifier == nil {
		s.notifier = notify.Discard{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// ApplyConfig updates templates and buffer capacity from a loaded config.
func (s *Service) ApplyConfig(cfg *config.Config) {
	s.renderer.SetConfig(cfg.Renderer())
	s.buffer.SetMax(cfg.MaxBufferSize)
	s.publish()
}

// Snapshot returns the buffered names, most recent first.
func (s *Service) Snapshot() []string {
	return s.buffer.Snapshot()
}

// Items returns the buffered names with positional descriptions.
func (s *Service) Items() []recent.Item {
	return s.buffer.Items()
}

// Renderer returns the renderer used for insertions.
func (s *Service) Renderer() *render.Renderer {
	return s.renderer
}

// Dispatch runs action and handles its outcome at the action boundary:
// soft failures become notices and are not returned; anything else is
// reported and returned.
func (s *Service) Dispatch(ctx context.Context, action Action, req Request) error {
	logger := logging.WithAction(s.logger, string(action))

	var err error
	switch action {
	case TrackCopy:
		var name string
		name, err = s.TrackCopy(ctx, req)
		if err == nil {
			s.notifier.Notify(notify.Info, fmt.Sprintf("Variable %s is added in buffer", name))
		}
	case InsertPrint:
		_, err = s.InsertPrint(ctx, req)
	case InsertArrayPrint:
		_, err = s.InsertArrayPrint(ctx, req)
	case InsertMultiplePrints:
		_, err = s.InsertMultiplePrints(ctx, req)
	default:
		err = fmt.Errorf("unknown action %q", action)
	}

	if n, ok := NoticeFor(err); ok {
		s.notifier.Notify(n.Level, n.Message)
	}
	switch {
	case err == nil:
		return nil
	case IsSoft(err):
		logger.Debug("action ended early", "reason", err)
		return nil
	default:
		logger.Error("action failed", "error", err)
		return err
	}
}

// TrackCopy records the editor selection in the buffer and returns the
// recorded identifier.
func (s *Service) TrackCopy(ctx context.Context, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Editor == nil {
		return "", ErrNoEditor
	}

	name := ident.Sanitize(req.Editor.Selection())
	if name == "" {
		return "", ErrNoIdentifier
	}

	s.buffer.Record(name)
	s.logger.Debug("identifier recorded", "action", TrackCopy, "name", name, "size", s.buffer.Len())
	s.publish()
	return name, nil
}

// InsertPrint inserts a scalar print for the clipboard identifier and
// returns the inserted text.
func (s *Service) InsertPrint(ctx context.Context, req Request) (string, error) {
	return s.insertFromClipboard(ctx, req, generator.KindScalar, InsertPrint)
}

// InsertArrayPrint inserts a collection print for the clipboard identifier
// and returns the inserted text.
func (s *Service) InsertArrayPrint(ctx context.Context, req Request) (string, error) {
	return s.insertFromClipboard(ctx, req, generator.KindCollection, InsertArrayPrint)
}

func (s *Service) insertFromClipboard(ctx context.Context, req Request, kind generator.Kind, action Action) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Editor == nil {
		return "", ErrNoEditor
	}

	clip := req.Clipboard
	if clip == nil {
		clip = s.clipboard
	}
	if clip == nil {
		return "", ErrEmptyClipboard
	}
	text, err := clip.ReadText(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEmptyClipboard, err)
	}

	name := ident.Sanitize(text)
	if name == "" {
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyClipboard
		}
		return "", ErrNoIdentifier
	}

	out := s.renderer.RenderLanguage(kind, req.Editor.LanguageID(), []string{name}, req.Editor.Indent())
	return s.insert(ctx, action, req.Editor, out)
}

// InsertMultiplePrints lets the user pick buffered names and inserts a
// scalar print for each, in the order picked.
func (s *Service) InsertMultiplePrints(ctx context.Context, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Editor == nil {
		return "", ErrNoEditor
	}
	if s.buffer.IsEmpty() {
		return "", ErrBufferEmpty
	}

	picker := req.Picker
	if picker == nil {
		picker = s.picker
	}
	if picker == nil {
		return "", ErrCancelled
	}

	picked, err := picker.PickMany(ctx, s.buffer.Items())
	if err != nil {
		return "", fmt.Errorf("pick variables: %w", err)
	}
	if len(picked) == 0 {
		return "", ErrCancelled
	}

	names := make([]string, 0, len(picked))
	for _, n := range picked {
		if ident.Valid(n) {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "", ErrNoIdentifier
	}

	out := s.renderer.RenderLanguage(generator.KindScalar, req.Editor.LanguageID(), names, req.Editor.Indent())
	return s.insert(ctx, InsertMultiplePrints, req.Editor, out)
}

// insert writes the joined snippets at the cursor as one edit.
func (s *Service) insert(ctx context.Context, action Action, ed host.Editor, out *generator.Output) (string, error) {
	snippet := out.String()
	if err := ed.Insert(ctx, snippet); err != nil {
		return "", fmt.Errorf("insert snippet: %w", err)
	}

	for i, name := range out.Names {
		s.logger.Debug("snippet inserted", "action", action, "name", name, "bytes", len(out.Snippets[i]), "language", ed.LanguageID())
	}
	return snippet, nil
}
