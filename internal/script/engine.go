// Package script runs user-defined macros written in Lua. A script registers
// handlers by macro id; when the macro dispatch table resolves a script
// binding, the handler runs and whatever strings it returns are typed
// through the macro output.
//
// The Lua state is confined to the scan-cycle goroutine, so no cross-
// goroutine marshalling is needed. The sandbox strips the file and code
// loading primitives before any user code runs.
package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyglow/internal/input/key"
)

// Typist types strings through the synthetic keystroke output.
type Typist interface {
	Type(s string)
}

// Engine hosts the Lua state and the registered macro handlers.
type Engine struct {
	L      *lua.LState
	typist Typist

	handlers map[uint8]*lua.LFunction
}

// NewEngine creates a sandboxed engine typing through the given typist.
func NewEngine(typist Typist) *Engine {
	L := lua.NewState()
	e := &Engine{
		L:        L,
		typist:   typist,
		handlers: make(map[uint8]*lua.LFunction),
	}
	sandbox(L)
	e.installAPI()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// installAPI exposes the keyglow table to scripts.
// keyglow.macro(id, fn) binds fn to a macro id.
func (e *Engine) installAPI() {
	api := e.L.NewTable()
	e.L.SetField(api, "macro", e.L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		fn := L.CheckFunction(2)
		if id >= 0 && id <= 255 {
			e.handlers[uint8(id)] = fn
		}
		return 0
	}))
	e.L.SetGlobal("keyglow", api)
}

// LoadFile runs a script file, letting it register handlers.
func (e *Engine) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	return e.LoadString(string(data))
}

// LoadString runs script source, letting it register handlers.
func (e *Engine) LoadString(source string) error {
	if err := e.L.DoString(source); err != nil {
		return fmt.Errorf("running macro script: %w", err)
	}
	return nil
}

// Bound reports whether a handler is registered for the id.
func (e *Engine) Bound(id uint8) bool {
	_, ok := e.handlers[id]
	return ok
}

// PlayScript runs the handler bound to id for a press transition and types
// its result. Unknown ids, release transitions, script errors, and
// non-string results are all silent no-ops: macro dispatch has no failure
// path.
func (e *Engine) PlayScript(id uint8, ev key.Event) {
	fn, ok := e.handlers[id]
	if !ok || !ev.ToggledOn() {
		return
	}

	evTable := e.L.NewTable()
	e.L.SetField(evTable, "state", lua.LString(ev.State.String()))
	e.L.SetField(evTable, "row", lua.LNumber(ev.Addr.Row))
	e.L.SetField(evTable, "col", lua.LNumber(ev.Addr.Col))

	if err := e.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, evTable); err != nil {
		return
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)

	switch v := ret.(type) {
	case lua.LString:
		e.typist.Type(string(v))
	case *lua.LTable:
		v.ForEach(func(_, item lua.LValue) {
			if s, ok := item.(lua.LString); ok {
				e.typist.Type(string(s))
			}
		})
	}
}
