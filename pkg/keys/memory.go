// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import (
	"sync"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

type memoryEntry struct {
	password string
	info     KeyInfo
}

// Memory is an in-memory KeyDAO. Keys are guarded by a plain password match
// and lost when the process exits.
type Memory struct {
	mu   sync.RWMutex
	keys map[string]memoryEntry
}

var _ KeyDAO = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{keys: map[string]memoryEntry{}}
}

func (m *Memory) Write(name, password string, info KeyInfo) error {
	if name == "" {
		return errors.BadRequest.With("key name is missing")
	}
	if password == "" {
		return errors.BadRequest.With("password is missing")
	}
	if len(info.PrivKey) == 0 {
		return errors.BadRequest.With("private key is missing")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keys[name]; ok {
		return errors.BadRequest.WithFormat("key %q already exists", name)
	}
	m.keys[name] = memoryEntry{password: password, info: info}
	return nil
}

func (m *Memory) Read(name, password string) (KeyInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.keys[name]
	if !ok {
		return KeyInfo{}, errors.NotFound.WithFormat("key %q not found", name)
	}
	if e.password != password {
		return KeyInfo{}, errors.Unauthenticated.WithFormat("wrong password for key %q", name)
	}
	return e.info, nil
}

func (m *Memory) Delete(name, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.keys[name]
	if !ok {
		return errors.NotFound.WithFormat("key %q not found", name)
	}
	if e.password != password {
		return errors.Unauthenticated.WithFormat("wrong password for key %q", name)
	}
	delete(m.keys, name)
	return nil
}

func (m *Memory) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.keys[name]
	return ok
}
