// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// MasterKeyContext holds an unlocked master key for the duration of one
// request or session. It is created where the request enters the system and
// passed explicitly to everything that needs the key; nothing in this package
// keeps a process-wide instance.
//
// All methods copy: callers can neither alias the internal buffer nor have
// their own buffer retained.
type MasterKeyContext struct {
	mu  sync.Mutex
	key []byte
	set bool
}

// NewMasterKeyContext returns an empty context.
func NewMasterKeyContext() *MasterKeyContext {
	return &MasterKeyContext{}
}

// Set stores a copy of key, replacing and zeroing any previous value.
func (c *MasterKeyContext) Set(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.zeroLocked()
	c.key = make([]byte, len(key))
	copy(c.key, key)
	c.set = true
}

// Get returns a copy of the held key and whether one is set.
func (c *MasterKeyContext) Get() ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		return nil, false
	}

	out := make([]byte, len(c.key))
	copy(out, c.key)
	return out, true
}

// Clear zeroes and drops the held key. Clearing an empty context is a no-op.
func (c *MasterKeyContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.zeroLocked()
	c.key = nil
	c.set = false
}

func (c *MasterKeyContext) zeroLocked() {
	for i := range c.key {
		c.key[i] = 0
	}
}
