package state

import (
	"os"
	"path/filepath"
	"testing"
)

// newHistoryTree builds tmp/a/{b,c} so tests can branch the navigation
// history.
func newHistoryTree(t *testing.T) string {
	t.Helper()

	dirA := filepath.Join(t.TempDir(), "a")
	for _, sub := range []string{"b", "c"} {
		if err := os.MkdirAll(filepath.Join(dirA, sub), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", sub, err)
		}
	}
	return dirA
}

func selectEntry(t *testing.T, state *AppState, name string) {
	t.Helper()
	for i, entry := range state.Entries {
		if entry.Name == name {
			state.SelectedIndex = i
			return
		}
	}
	t.Fatalf("entry %q not found in %v", name, state.Entries)
}

func TestBackAndForwardAreSymmetric(t *testing.T) {
	dirA := newHistoryTree(t)
	dirB := filepath.Join(dirA, "b")
	state := newBrowsingState(t, dirA)
	r := NewStateReducer()

	selectEntry(t, state, "b")
	reduce(t, r, state, EnterAction{})
	if state.CurrentPath != dirB {
		t.Fatalf("expected %s, got %s", dirB, state.CurrentPath)
	}
	if len(state.BackHistory) != 1 || state.BackHistory[0] != dirA {
		t.Fatalf("expected back history [%s], got %v", dirA, state.BackHistory)
	}

	reduce(t, r, state, GoBackAction{})
	if state.CurrentPath != dirA {
		t.Errorf("back should return to %s, got %s", dirA, state.CurrentPath)
	}
	if len(state.BackHistory) != 0 {
		t.Errorf("back history should be empty, got %v", state.BackHistory)
	}
	if len(state.ForwardHistory) != 1 || state.ForwardHistory[0] != dirB {
		t.Errorf("expected forward history [%s], got %v", dirB, state.ForwardHistory)
	}

	reduce(t, r, state, GoForwardAction{})
	if state.CurrentPath != dirB {
		t.Errorf("forward should return to %s, got %s", dirB, state.CurrentPath)
	}
	if len(state.ForwardHistory) != 0 {
		t.Errorf("forward history should be empty, got %v", state.ForwardHistory)
	}
	if len(state.BackHistory) != 1 || state.BackHistory[0] != dirA {
		t.Errorf("expected back history [%s], got %v", dirA, state.BackHistory)
	}
}

func TestFreshDescentInvalidatesForwardHistory(t *testing.T) {
	dirA := newHistoryTree(t)
	dirC := filepath.Join(dirA, "c")
	state := newBrowsingState(t, dirA)
	r := NewStateReducer()

	selectEntry(t, state, "b")
	reduce(t, r, state, EnterAction{})
	reduce(t, r, state, GoBackAction{})
	if len(state.ForwardHistory) != 1 {
		t.Fatalf("expected one forward entry, got %v", state.ForwardHistory)
	}

	// Entering c is a fresh descent: the old forward branch is gone.
	selectEntry(t, state, "c")
	reduce(t, r, state, EnterAction{})
	if state.CurrentPath != dirC {
		t.Fatalf("expected %s, got %s", dirC, state.CurrentPath)
	}
	if len(state.ForwardHistory) != 0 {
		t.Errorf("forward history should be cleared by a fresh descent, got %v", state.ForwardHistory)
	}

	reduce(t, r, state, GoForwardAction{})
	if state.CurrentPath != dirC {
		t.Errorf("forward with empty history should be a no-op, got %s", state.CurrentPath)
	}
}

func TestDeepHistoryRoundTrip(t *testing.T) {
	dirA := newHistoryTree(t)
	dirB := filepath.Join(dirA, "b")
	dirBC := filepath.Join(dirB, "c")
	if err := os.Mkdir(dirBC, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	state := newBrowsingState(t, dirA)
	r := NewStateReducer()

	selectEntry(t, state, "b")
	reduce(t, r, state, EnterAction{})
	selectEntry(t, state, "c")
	reduce(t, r, state, EnterAction{})
	if state.CurrentPath != dirBC {
		t.Fatalf("expected %s, got %s", dirBC, state.CurrentPath)
	}

	reduce(t, r, state, GoBackAction{})
	reduce(t, r, state, GoBackAction{})
	if state.CurrentPath != dirA {
		t.Fatalf("two backs should land on %s, got %s", dirA, state.CurrentPath)
	}
	if len(state.ForwardHistory) != 2 {
		t.Fatalf("expected two forward entries, got %v", state.ForwardHistory)
	}

	reduce(t, r, state, GoBackAction{})
	if state.CurrentPath != dirA {
		t.Errorf("back with empty history should be a no-op, got %s", state.CurrentPath)
	}

	reduce(t, r, state, GoForwardAction{})
	reduce(t, r, state, GoForwardAction{})
	if state.CurrentPath != dirBC {
		t.Errorf("two forwards should land on %s, got %s", dirBC, state.CurrentPath)
	}
	if len(state.BackHistory) != 2 {
		t.Errorf("expected two back entries, got %v", state.BackHistory)
	}
}

func TestEnterParentPushesBackHistory(t *testing.T) {
	dirA := newHistoryTree(t)
	dirB := filepath.Join(dirA, "b")
	state := newBrowsingState(t, dirB)
	r := NewStateReducer()

	// ".." is a fresh descent like any other navigation.
	selectEntry(t, state, "..")
	reduce(t, r, state, EnterAction{})
	if state.CurrentPath != dirA {
		t.Fatalf("expected %s, got %s", dirA, state.CurrentPath)
	}
	if len(state.BackHistory) != 1 || state.BackHistory[0] != dirB {
		t.Errorf("expected back history [%s], got %v", dirB, state.BackHistory)
	}

	reduce(t, r, state, GoBackAction{})
	if state.CurrentPath != dirB {
		t.Errorf("back after '..' should return to %s, got %s", dirB, state.CurrentPath)
	}
}

func TestParentPath(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		path     string
		want     string
		wantOK   bool
	}{
		{"nested", filepath.Join(sep, "a", "b"), filepath.Join(sep, "a"), true},
		{"top level", filepath.Join(sep, "a"), sep, true},
		{"root", sep, "", false},
		{"no separator", "relative", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parentPath(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parentPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
