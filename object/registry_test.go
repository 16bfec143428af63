package object

import (
	stderrors "errors"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnObjectEvent(e Event) {
	o.events = append(o.events, e)
}

func newTestObject(t *testing.T, name string) *Base {
	t.Helper()
	base, err := NewBase(name, &mixerProps{Gain: 1})
	if err != nil {
		t.Fatalf("NewBase failed: %v", err)
	}
	return base
}

func TestRegistry_Basic(t *testing.T) {
	reg := NewRegistry()
	obj := newTestObject(t, "a")

	h, err := reg.Register(obj)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}

	got, ok := reg.Deref(h)
	if !ok {
		t.Fatal("Deref failed")
	}
	if got.ObjectName() != "a" {
		t.Fatalf("Deref returned %q, want a", got.ObjectName())
	}

	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}

	released, ok := reg.Release(h)
	if !ok {
		t.Fatal("Release failed")
	}
	if released.ObjectName() != "a" {
		t.Fatalf("Release returned %q, want a", released.ObjectName())
	}

	if _, ok := reg.Deref(h); ok {
		t.Fatal("Deref should fail after Release")
	}
	if reg.Len() != 0 {
		t.Fatalf("Len = %d after Release, want 0", reg.Len())
	}
}

func TestRegistry_StaleHandle(t *testing.T) {
	reg := NewRegistry()

	oldHandle, err := reg.Register(newTestObject(t, "old"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	reg.Release(oldHandle)

	// The freed slot is reused; the stale handle must not see the new tenant.
	newHandle, err := reg.Register(newTestObject(t, "new"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := reg.Deref(oldHandle); ok {
		t.Fatal("stale handle resolved after slot reuse")
	}
	obj, ok := reg.Deref(newHandle)
	if !ok || obj.ObjectName() != "new" {
		t.Fatalf("new handle resolved to %v, %v", obj, ok)
	}
	if _, ok := reg.Release(oldHandle); ok {
		t.Fatal("stale handle should not release the new tenant")
	}
}

func TestRegistry_ZeroHandle(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Deref(0); ok {
		t.Fatal("handle 0 should never resolve")
	}
	if _, ok := reg.Release(0); ok {
		t.Fatal("handle 0 should never release")
	}
}

func TestRegistry_NilObject(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(nil); !stderrors.Is(err, ErrNilObject) {
		t.Fatalf("Register(nil) error = %v, want ErrNilObject", err)
	}
}

func TestRegistry_Observer(t *testing.T) {
	reg := NewRegistry()
	obs := &testObserver{}
	reg.Subscribe(obs)

	h, err := reg.Register(newTestObject(t, "a"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(obs.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventRegistered || obs.events[0].Handle != h {
		t.Fatal("wrong registered event")
	}

	reg.Release(h)
	if len(obs.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventReleased {
		t.Fatal("expected released event")
	}

	reg.Unsubscribe(obs)
	reg.Register(newTestObject(t, "b"))
	if len(obs.events) != 2 {
		t.Fatal("should not receive events after Unsubscribe")
	}
}

func TestRegistry_Each(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := reg.Register(newTestObject(t, name)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	var names []string
	reg.Each(func(h Handle, obj Object) bool {
		names = append(names, obj.ObjectName())
		return true
	})
	if len(names) != 3 || names[0] != "a" || names[2] != "c" {
		t.Fatalf("Each visited %v, want [a b c]", names)
	}

	count := 0
	reg.Each(func(h Handle, obj Object) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Each with early stop visited %d, want 1", count)
	}
}

func TestRegistry_Close(t *testing.T) {
	reg := NewRegistry()
	h, err := reg.Register(newTestObject(t, "a"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := reg.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, ok := reg.Deref(h); ok {
		t.Fatal("Deref should fail after Close")
	}
	if _, err := reg.Register(newTestObject(t, "b")); !stderrors.Is(err, ErrClosed) {
		t.Fatalf("Register after Close error = %v, want ErrClosed", err)
	}

	// Idempotent.
	if err := reg.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestRef_Resolution(t *testing.T) {
	reg := NewRegistry()
	h, err := reg.Register(newTestObject(t, "a"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var zero Ref
	if !zero.IsZero() {
		t.Error("zero Ref should report IsZero")
	}
	if _, ok := zero.Object(); ok {
		t.Error("zero Ref should not resolve")
	}

	ref := Ref{Registry: reg, Handle: h}
	if ref.IsZero() {
		t.Error("live Ref should not report IsZero")
	}
	obj, ok := ref.Object()
	if !ok || obj.ObjectName() != "a" {
		t.Fatalf("Ref resolved to %v, %v", obj, ok)
	}

	reg.Release(h)
	if _, ok := ref.Object(); ok {
		t.Error("Ref should not resolve after release")
	}
}
