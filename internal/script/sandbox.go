package script

import lua "github.com/yuin/gopher-lua"

// sandbox strips the primitives a script could use to reach outside the
// state: file execution, code loading, and module loading from disk.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	// Clear package.path/cpath so require cannot pull modules from disk.
	pkg := L.GetGlobal("package")
	if pkgTable, ok := pkg.(*lua.LTable); ok {
		L.SetField(pkgTable, "path", lua.LString(""))
		L.SetField(pkgTable, "cpath", lua.LString(""))
	}

	// Scripts have no business spawning processes or reading files.
	L.SetGlobal("os", lua.LNil)
	L.SetGlobal("io", lua.LNil)
}
