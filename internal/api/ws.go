// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package api

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/albertocavalcante/dbgprint/internal/recent"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: checkOrigin,
}

// checkOrigin accepts clients without an Origin header, pages served by this
// host, and pages served from a loopback address.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

type wsMessage struct {
	Type  string        `json:"type"`
	Items []recent.Item `json:"items"`
}

// handleWS pushes the buffer after every change, starting with the current
// contents. Client messages are ignored; reading only detects disconnects.
func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.svc.Subscribe()
	defer cancel()

	connDone := make(chan struct{})
	go func() {
		defer close(connDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case names, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(wsMessage{Type: "buffer", Items: recent.ItemsOf(names)}); err != nil {
				return
			}
		case <-connDone:
			return
		case <-r.Context().Done():
			return
		}
	}
}
