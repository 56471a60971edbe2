package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Play", km.Play},
		{"Reset", km.Reset},
		{"PrevDay", km.PrevDay},
		{"NextDay", km.NextDay},
		{"PrevMonth", km.PrevMonth},
		{"NextMonth", km.NextMonth},
		{"FirstDay", km.FirstDay},
		{"LastDay", km.LastDay},
		{"Help", km.Help},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		binding key.Binding
		keys    []string
	}{
		{km.Quit, []string{"q", "ctrl+c"}},
		{km.Play, []string{" ", "p"}},
		{km.PrevDay, []string{"left", "h"}},
		{km.NextDay, []string{"right", "l"}},
		{km.PrevMonth, []string{"[", "pgup"}},
		{km.NextMonth, []string{"]", "pgdown"}},
		{km.FirstDay, []string{"home"}},
		{km.LastDay, []string{"end"}},
	}
	for _, tt := range tests {
		for _, k := range tt.keys {
			if !slices.Contains(tt.binding.Keys(), k) {
				t.Errorf("binding %q is missing key %q", tt.binding.Help().Desc, k)
			}
		}
	}
}

func TestKeyMap_HelpCoversEveryBinding(t *testing.T) {
	km := DefaultKeyMap()
	var n int
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 10 {
		t.Errorf("FullHelp lists %d bindings, want 10", n)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
}
