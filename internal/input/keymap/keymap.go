// Package keymap holds the static per-layer key tables and the active-layer
// stack. The tables are declarative configuration; the stack is the minimal
// layer state needed to resolve a switch address to a logical key.
package keymap

import (
	"fmt"

	"github.com/dshills/keyglow/internal/input/key"
)

// Keymap is a set of per-layer Addr→Key tables for a fixed matrix size.
type Keymap struct {
	rows   uint8
	cols   uint8
	layers map[key.Layer][]key.Key
}

// New creates an empty keymap for a rows×cols matrix.
func New(rows, cols uint8) *Keymap {
	return &Keymap{
		rows:   rows,
		cols:   cols,
		layers: make(map[key.Layer][]key.Key),
	}
}

// Rows returns the matrix row count.
func (m *Keymap) Rows() uint8 { return m.rows }

// Cols returns the matrix column count.
func (m *Keymap) Cols() uint8 { return m.cols }

// SetLayer installs a layer table in row-major order.
func (m *Keymap) SetLayer(layer key.Layer, keys []key.Key) error {
	if len(keys) != int(m.rows)*int(m.cols) {
		return fmt.Errorf("layer %s: got %d keys, want %d", layer, len(keys), int(m.rows)*int(m.cols))
	}
	table := make([]key.Key, len(keys))
	copy(table, keys)
	m.layers[layer] = table
	return nil
}

// HasLayer reports whether a table exists for the layer.
func (m *Keymap) HasLayer(layer key.Layer) bool {
	_, ok := m.layers[layer]
	return ok
}

// LookupOn returns the key bound at addr on one specific layer, without
// transparency resolution. Out-of-range addresses and missing layers
// return None.
func (m *Keymap) LookupOn(layer key.Layer, addr key.Addr) key.Key {
	table, ok := m.layers[layer]
	if !ok || addr.Row >= m.rows || addr.Col >= m.cols {
		return key.None
	}
	return table[int(addr.Row)*int(m.cols)+int(addr.Col)]
}

// Stack tracks which layers are active. The primary layer is always at the
// bottom and cannot be deactivated.
type Stack struct {
	keymap *Keymap
	active []key.Layer
}

// NewStack creates a stack over the keymap with only the primary layer
// active.
func NewStack(m *Keymap) *Stack {
	return &Stack{
		keymap: m,
		active: []key.Layer{key.LayerPrimary},
	}
}

// Top returns the highest active layer.
func (s *Stack) Top() key.Layer {
	return s.active[len(s.active)-1]
}

// IsActive reports whether the layer is anywhere on the stack.
func (s *Stack) IsActive(layer key.Layer) bool {
	for _, l := range s.active {
		if l == layer {
			return true
		}
	}
	return false
}

// Activate pushes a layer onto the stack if not already active.
func (s *Stack) Activate(layer key.Layer) {
	if s.IsActive(layer) {
		return
	}
	s.active = append(s.active, layer)
}

// Deactivate removes a layer from the stack. The primary layer stays.
func (s *Stack) Deactivate(layer key.Layer) {
	if layer == key.LayerPrimary {
		return
	}
	for i, l := range s.active {
		if l == layer {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Toggle activates the layer if inactive, deactivates it otherwise.
func (s *Stack) Toggle(layer key.Layer) {
	if s.IsActive(layer) {
		s.Deactivate(layer)
	} else {
		s.Activate(layer)
	}
}

// Move deactivates everything and activates only the given layer
// (plus primary underneath for transparency fallthrough).
func (s *Stack) Move(layer key.Layer) {
	s.active = s.active[:0]
	s.active = append(s.active, key.LayerPrimary)
	if layer != key.LayerPrimary {
		s.active = append(s.active, layer)
	}
}

// Lookup resolves a switch address against the active layers, top down,
// falling through Transparent entries.
func (s *Stack) Lookup(addr key.Addr) key.Key {
	for i := len(s.active) - 1; i >= 0; i-- {
		k := s.keymap.LookupOn(s.active[i], addr)
		if k != key.Transparent {
			return k
		}
	}
	return key.None
}

// HandleLayerKey applies a layer key event to the stack: shift layers are
// active while held, lock layers toggle on press, move layers replace the
// stack on press. Non-layer events are ignored.
func (s *Stack) HandleLayerKey(ev key.Event) {
	if !ev.Key.IsLayerKey() {
		return
	}
	flags := ev.Key.Flags()
	layer := ev.Key.Layer()
	switch {
	case flags&key.FlagLayerShift != 0:
		if ev.ToggledOn() {
			s.Activate(layer)
		} else {
			s.Deactivate(layer)
		}
	case flags&key.FlagLayerLock != 0:
		if ev.ToggledOn() {
			s.Toggle(layer)
		}
	case flags&key.FlagLayerMove != 0:
		if ev.ToggledOn() {
			s.Move(layer)
		}
	}
}
