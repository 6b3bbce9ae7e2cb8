package state

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeState struct {
	name  string
	log   *[]string
	dt    float64
	sizes [][2]int
}

func (f *fakeState) Enter()                    { *f.log = append(*f.log, "enter "+f.name) }
func (f *fakeState) Exit()                     { *f.log = append(*f.log, "exit "+f.name) }
func (f *fakeState) Update(deltaTime float64)  { f.dt += deltaTime }
func (f *fakeState) Draw(screen *ebiten.Image) {}
func (f *fakeState) Resize(w, h int)           { f.sizes = append(f.sizes, [2]int{w, h}) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.Update(1) // без состояния ничего не происходит
	sm.SetState(a)
	sm.Update(0.5)
	sm.SetState(b)
	sm.Update(0.25)
	sm.SetState(nil)

	want := []string{"enter a", "exit a", "enter b", "exit b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("transitions = %v, want %v", log, want)
	}
	if a.dt != 0.5 || b.dt != 0.25 {
		t.Errorf("updates: a=%v b=%v", a.dt, b.dt)
	}
	if sm.Current() != nil {
		t.Errorf("Current() = %v, want nil", sm.Current())
	}
}

func TestPauseStateForwardsResize(t *testing.T) {
	var log []string
	game := &fakeState{name: "game", log: &log}
	sm := NewStateMachine()
	sm.SetState(NewPauseState(sm, game, nil))

	sm.Resize(640, 480)
	if len(game.sizes) != 1 || game.sizes[0] != [2]int{640, 480} {
		t.Errorf("resizes = %v", game.sizes)
	}

	// пауза не пропускает время к колесу
	sm.Update(1)
	if game.dt != 0 {
		t.Errorf("paused state advanced by %v", game.dt)
	}
}
