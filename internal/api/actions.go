// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/albertocavalcante/dbgprint/generator"
	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/recent"
)

type bufferResponse struct {
	Items []recent.Item `json:"items"`
}

type printRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Indent   string `json:"indent"`
}

type multiPrintRequest struct {
	Selected []string `json:"selected"`
	Language string   `json:"language"`
	Indent   string   `json:"indent"`
}

// editResponse is a snippet for the plugin to insert at the cursor. ID lets
// the plugin correlate the edit with server logs.
type editResponse struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet"`
}

type languageResponse struct {
	Name        string   `json:"name"`
	Family      string   `json:"family"`
	Description string   `json:"description"`
	LanguageIDs []string `json:"languageIds"`
}

func (h *handler) getBuffer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bufferResponse{Items: h.svc.Items()})
}

func (h *handler) track(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	name, err := h.svc.TrackCopy(r.Context(), command.Request{Editor: &host.Capture{Selected: req.Text}})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *handler) print(w http.ResponseWriter, r *http.Request) {
	h.insert(w, r, h.svc.InsertPrint)
}

func (h *handler) arrayPrint(w http.ResponseWriter, r *http.Request) {
	h.insert(w, r, h.svc.InsertArrayPrint)
}

type insertFunc func(ctx context.Context, req command.Request) (string, error)

func (h *handler) insert(w http.ResponseWriter, r *http.Request, fn insertFunc) {
	var req printRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snippet, err := fn(r.Context(), command.Request{
		Editor:    &host.Capture{Language: req.Language, LineIndent: req.Indent},
		Clipboard: host.StaticClipboard(req.Text),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeEdit(w, snippet)
}

func (h *handler) multiPrint(w http.ResponseWriter, r *http.Request) {
	var req multiPrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snippet, err := h.svc.InsertMultiplePrints(r.Context(), command.Request{
		Editor: &host.Capture{Language: req.Language, LineIndent: req.Indent},
		Picker: host.StaticPicker(req.Selected),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeEdit(w, snippet)
}

func (h *handler) languages(w http.ResponseWriter, r *http.Request) {
	gens := generator.All()
	out := make([]languageResponse, 0, len(gens))
	for _, g := range gens {
		meta := g.Metadata()
		out = append(out, languageResponse{
			Name:        meta.Name,
			Family:      meta.Family.String(),
			Description: meta.Description,
			LanguageIDs: meta.LanguageIDs,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) writeEdit(w http.ResponseWriter, snippet string) {
	id := uuid.NewString()
	h.logger.Debug("edit issued", "id", id, "bytes", len(snippet))
	writeJSON(w, http.StatusOK, editResponse{ID: id, Snippet: snippet})
}

// writeError maps action errors to statuses. Soft failures carry the notice
// the plugin should show.
func (h *handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, command.ErrCancelled) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, command.ErrBufferEmpty):
		status = http.StatusConflict
	case !command.IsSoft(err):
		status = http.StatusInternalServerError
		h.logger.Error("action failed", "error", err)
	}

	n, _ := command.NoticeFor(err)
	writeJSON(w, status, n)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
