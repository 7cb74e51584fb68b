// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package mcp exposes the print actions as Model Context Protocol tools so
// coding agents can track variables and request debug prints. The agent
// applies returned snippets itself.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/logging"
	"github.com/albertocavalcante/dbgprint/internal/recent"
)

// Server wraps the MCP server with the print tools.
type Server struct {
	svc    *command.Service
	logger *slog.Logger
	server *mcp.Server
}

// TrackInput is the input schema for the track_copy tool.
type TrackInput struct {
	Text string `json:"text" jsonschema:"Copied or selected text containing a variable name"`
}

// TrackOutput is the output schema for the track_copy tool.
type TrackOutput struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// PrintInput is the input schema for the insert_print and insert_array_print tools.
type PrintInput struct {
	Text     string `json:"text" jsonschema:"Text holding the variable name, as copied by the user"`
	Language string `json:"language,omitempty" jsonschema:"Editor language id, e.g. python or typescript; unknown ids use C++"`
	Indent   string `json:"indent,omitempty" jsonschema:"Leading whitespace of the line the snippet is inserted on"`
}

// MultiPrintInput is the input schema for the insert_multiple_prints tool.
type MultiPrintInput struct {
	Selected []string `json:"selected" jsonschema:"Buffered variable names to print, in output order"`
	Language string   `json:"language,omitempty" jsonschema:"Editor language id"`
	Indent   string   `json:"indent,omitempty" jsonschema:"Leading whitespace of the insertion line"`
}

// SnippetOutput is the output schema for the insertion tools. Snippet is
// empty when the action ended early; Message then says why.
type SnippetOutput struct {
	Snippet string `json:"snippet"`
	Message string `json:"message,omitempty"`
}

// ListInput is the input schema for the list_buffer tool.
type ListInput struct{}

// ListOutput is the output schema for the list_buffer tool.
type ListOutput struct {
	Items []recent.Item `json:"items"`
	Count int           `json:"count"`
}

// NewServer creates an MCP server backed by svc.
func NewServer(svc *command.Service, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{svc: svc, logger: logger}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dbgprint",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "track_copy",
		Description: "Remember a variable name the user copied so it can be printed later with insert_multiple_prints. Quotes, commas, semicolons and anything after '=' are stripped.",
	}, s.handleTrack)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_print",
		Description: "Render a debug print statement for one variable in the given language. Insert the returned snippet at the cursor.",
	}, s.handlePrint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_array_print",
		Description: "Render a loop printing every element of a collection variable. Insert the returned snippet at the cursor.",
	}, s.handleArrayPrint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_multiple_prints",
		Description: "Render one print statement per selected buffered variable, in the order given.",
	}, s.handleMultiPrint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_buffer",
		Description: "List the tracked variable names, most recent first.",
	}, s.handleList)

	s.server = server
	return s
}

func (s *Server) handleTrack(ctx context.Context, req *mcp.CallToolRequest, input TrackInput) (*mcp.CallToolResult, TrackOutput, error) {
	name, err := s.svc.TrackCopy(ctx, command.Request{Editor: &host.Capture{Selected: input.Text}})
	if err != nil {
		msg, err := s.softMessage(err)
		return nil, TrackOutput{Message: msg}, err
	}
	return nil, TrackOutput{
		Name:    name,
		Message: fmt.Sprintf("Variable %s is added in buffer", name),
	}, nil
}

func (s *Server) handlePrint(ctx context.Context, req *mcp.CallToolRequest, input PrintInput) (*mcp.CallToolResult, SnippetOutput, error) {
	return s.insert(ctx, input, s.svc.InsertPrint)
}

func (s *Server) handleArrayPrint(ctx context.Context, req *mcp.CallToolRequest, input PrintInput) (*mcp.CallToolResult, SnippetOutput, error) {
	return s.insert(ctx, input, s.svc.InsertArrayPrint)
}

func (s *Server) insert(ctx context.Context, input PrintInput, fn func(context.Context, command.Request) (string, error)) (*mcp.CallToolResult, SnippetOutput, error) {
	snippet, err := fn(ctx, command.Request{
		Editor:    &host.Capture{Language: input.Language, LineIndent: input.Indent},
		Clipboard: host.StaticClipboard(input.Text),
	})
	if err != nil {
		msg, err := s.softMessage(err)
		return nil, SnippetOutput{Message: msg}, err
	}
	return nil, SnippetOutput{Snippet: snippet}, nil
}

func (s *Server) handleMultiPrint(ctx context.Context, req *mcp.CallToolRequest, input MultiPrintInput) (*mcp.CallToolResult, SnippetOutput, error) {
	snippet, err := s.svc.InsertMultiplePrints(ctx, command.Request{
		Editor: &host.Capture{Language: input.Language, LineIndent: input.Indent},
		Picker: host.StaticPicker(input.Selected),
	})
	if err != nil {
		msg, err := s.softMessage(err)
		return nil, SnippetOutput{Message: msg}, err
	}
	return nil, SnippetOutput{Snippet: snippet}, nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	items := s.svc.Items()
	return nil, ListOutput{Items: items, Count: len(items)}, nil
}

// softMessage turns an expected failure into a message for the agent.
// Unexpected errors are returned as tool errors.
func (s *Server) softMessage(err error) (string, error) {
	if !command.IsSoft(err) {
		s.logger.Error("tool failed", "error", err)
		return "", fmt.Errorf("debug print failed: %w", err)
	}
	if errors.Is(err, command.ErrCancelled) {
		return "No variables selected", nil
	}
	n, _ := command.NoticeFor(err)
	return n.Message, nil
}

// Run starts the MCP server on stdio.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
