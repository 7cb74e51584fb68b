// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package command

// Subscribe returns a channel that receives the buffer snapshot after every
// change, starting with the current one. Slow readers only see the latest
// snapshot. Call cancel to stop receiving; the channel is then closed.
func (s *Service) Subscribe() (updates <-chan []string, cancel func()) {
	ch := make(chan []string, 1)
	ch <- s.buffer.Snapshot()

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	var once bool
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if once {
			return
		}
		once = true
		delete(s.subscribers, ch)
		close(ch)
	}
}

// publish sends the current snapshot to every subscriber, replacing any
// snapshot it has not read yet.
func (s *Service) publish() {
	snap := s.buffer.Snapshot()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
