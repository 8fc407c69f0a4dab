package main

import "testing"

func TestCommandMap(t *testing.T) {
	m := commandMap()
	if len(m) != len(SubCommands) {
		t.Errorf("subcommand names are not unique")
	}
	for _, name := range []string{"find", "stats", "suggest", "estimate"} {
		if m[name] == nil {
			t.Errorf("missing subcommand %s", name)
		}
	}
	if m["unknown"] != nil {
		t.Errorf("unknown subcommand found")
	}
}
