// Package script implements control listeners in Lua.
//
// An Engine runs a script in a restricted Lua state (base, table, string
// and math libraries only) and hands out listeners backed by the global
// functions the script defines:
//
//	-- controls.lua
//	function jump(active)
//	  if active then print("jump!") end
//	end
//
//	eng := script.NewEngine()
//	defer eng.Close()
//	if err := eng.DoFile("controls.lua"); err != nil { ... }
//	l, err := eng.Listener("jump")
//	table.BindKeyByName("Space", l)
//
// Lua errors raised by a listener are logged and remembered; they never
// reach the dispatching table.
//
// gopher-lua states are not goroutine-safe, so an Engine and its
// listeners must be used from the goroutine that pumps input events.
package script
