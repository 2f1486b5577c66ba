package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMovementBindings(t *testing.T) {
	cases := map[rune]Action{'h': MoveW, 'j': MoveS, 'k': MoveN, 'l': MoveE, 'y': MoveNW, 'u': MoveNE, 'b': MoveSW, 'n': MoveSE}
	var r Reader
	for key, want := range cases {
		cmd := r.Handle(keyEvent(key))
		if cmd.Action != want {
			t.Errorf("key %q = action %v, want %v", key, cmd.Action, want)
		}
	}
}

func TestAttackPromptConsumesTwoKeys(t *testing.T) {
	var r Reader
	cmd := r.Handle(keyEvent('f'))
	if cmd.Action != None {
		t.Fatalf("first key of attack prompt returned %v, want None", cmd.Action)
	}
	cmd = r.Handle(keyEvent('l'))
	if cmd.Action != Attack || cmd.DX != 1 || cmd.DY != 0 {
		t.Fatalf("attack+l = %+v, want Attack dx=1 dy=0", cmd)
	}
}

func TestTorchPromptConsumesTwoKeys(t *testing.T) {
	var r Reader
	r.Handle(keyEvent('t'))
	cmd := r.Handle(keyEvent('k'))
	if cmd.Action != PlaceTorch || cmd.DX != 0 || cmd.DY != -1 {
		t.Fatalf("torch+k = %+v, want PlaceTorch dx=0 dy=-1", cmd)
	}
}

func TestSingleKeyCommands(t *testing.T) {
	cases := map[rune]Action{'e': ToggleLantern, '>': Descend, '<': Ascend, ',': Pickup, 'E': DebugRefuel, 'Q': Quit}
	var r Reader
	for key, want := range cases {
		cmd := r.Handle(keyEvent(key))
		if cmd.Action != want {
			t.Errorf("key %q = %v, want %v", key, cmd.Action, want)
		}
	}
}
