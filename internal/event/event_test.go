package event

import "testing"

type recorder struct {
	got []Event
	fn  func(Event)
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.fn != nil {
		r.fn(e)
	}
}

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SpinStarted, a)
	d.Subscribe(SpinFinished, a)
	d.Subscribe(SpinFinished, b)

	d.Dispatch(Event{Type: SpinStarted})
	d.Dispatch(Event{Type: SpinFinished, Data: 3})
	d.Dispatch(Event{Type: PrizeAwarded})

	if len(a.got) != 2 || len(b.got) != 1 {
		t.Fatalf("a got %d, b got %d; want 2 and 1", len(a.got), len(b.got))
	}
	if b.got[0].Data != 3 {
		t.Errorf("payload = %v, want 3", b.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SpinFinished, a)
	d.Subscribe(SpinFinished, b)
	d.Unsubscribe(SpinFinished, a)
	d.Unsubscribe(SpinStarted, b) // не подписан — ничего не происходит

	d.Dispatch(Event{Type: SpinFinished})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("a got %d, b got %d; want 0 and 1", len(a.got), len(b.got))
	}
}

func TestUnsubscribeFromHandler(t *testing.T) {
	d := NewDispatcher()
	second := &recorder{}
	var first *recorder
	first = &recorder{fn: func(Event) { d.Unsubscribe(SpinFinished, first) }}
	d.Subscribe(SpinFinished, first)
	d.Subscribe(SpinFinished, second)

	d.Dispatch(Event{Type: SpinFinished})
	d.Dispatch(Event{Type: SpinFinished})
	if len(first.got) != 1 {
		t.Errorf("first got %d events, want 1", len(first.got))
	}
	if len(second.got) != 2 {
		t.Errorf("second got %d events, want 2 (removal must not skip it)", len(second.got))
	}
}
