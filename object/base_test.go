package object

import (
	stderrors "errors"
	"testing"

	"github.com/streamkit/mediad/errors"
)

func newMixerBase(t *testing.T) (*Base, *mixerProps) {
	t.Helper()
	props := &mixerProps{
		Muted: true,
		Gain:  5,
		Label: "ch1",
		Level: 42,
	}
	base, err := NewBase("mixer", props)
	if err != nil {
		t.Fatalf("NewBase failed: %v", err)
	}
	return base, props
}

func TestBase_Accessors(t *testing.T) {
	base, _ := newMixerBase(t)

	if base.ObjectName() != "mixer" {
		t.Errorf("ObjectName = %q, want mixer", base.ObjectName())
	}

	muted, err := base.GetBool("muted")
	if err != nil || muted != true {
		t.Errorf("GetBool(muted) = %v, %v, want true", muted, err)
	}

	gain, err := base.GetInt("gain")
	if err != nil || gain != 5 {
		t.Errorf("GetInt(gain) = %v, %v, want 5", gain, err)
	}

	label, err := base.GetString("label")
	if err != nil || label != "ch1" {
		t.Errorf("GetString(label) = %v, %v, want ch1", label, err)
	}
}

func TestBase_IntegerWidening(t *testing.T) {
	base, props := newMixerBase(t)

	level, err := base.GetInt("level")
	if err != nil || level != 42 {
		t.Errorf("GetInt(level) = %v, %v, want 42", level, err)
	}

	// A uint64 above the int64 range is reinterpreted bit-for-bit.
	props.Level = 1<<63 + 7
	level, err = base.GetInt("level")
	if err != nil {
		t.Fatalf("GetInt(level) failed: %v", err)
	}
	if uint64(level) != 1<<63+7 {
		t.Errorf("GetInt(level) bits = %x, want %x", uint64(level), uint64(1<<63+7))
	}
}

func TestBase_Freshness(t *testing.T) {
	base, props := newMixerBase(t)

	if gain, _ := base.GetInt("gain"); gain != 5 {
		t.Fatalf("initial gain = %d, want 5", gain)
	}

	props.Gain = 20
	if gain, _ := base.GetInt("gain"); gain != 20 {
		t.Errorf("gain after host mutation = %d, want 20", gain)
	}
}

func TestBase_NotFound(t *testing.T) {
	base, _ := newMixerBase(t)

	_, err := base.GetInt("bitrate")
	if err == nil {
		t.Fatal("expected error for unknown property")
	}
	target := &errors.Error{Stage: errors.StageResolve, Kind: errors.KindNotFound}
	if !stderrors.Is(err, target) {
		t.Errorf("error = %v, want resolve not_found", err)
	}
}

func TestBase_TypeMismatch(t *testing.T) {
	base, _ := newMixerBase(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"bool accessor on int", func() error { _, err := base.GetBool("gain"); return err }},
		{"int accessor on bool", func() error { _, err := base.GetInt("muted"); return err }},
		{"string accessor on bool", func() error { _, err := base.GetString("muted"); return err }},
		{"int accessor on float", func() error { _, err := base.GetInt("rate"); return err }},
	}

	target := &errors.Error{Stage: errors.StageAccess, Kind: errors.KindTypeMismatch}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected type mismatch error")
			}
			if !stderrors.Is(err, target) {
				t.Errorf("error = %v, want access type_mismatch", err)
			}
		})
	}
}

func TestBase_GetValue(t *testing.T) {
	base, props := newMixerBase(t)

	v, err := base.GetValue("rate")
	if err != nil {
		t.Fatalf("GetValue(rate) failed: %v", err)
	}
	if v != props.Rate {
		t.Errorf("GetValue(rate) = %v, want %v", v, props.Rate)
	}

	if _, err := base.GetValue("bitrate"); err == nil {
		t.Error("expected error for unknown property")
	}
}

func TestNewBase_Validation(t *testing.T) {
	if _, err := NewBase("", &mixerProps{}); err == nil {
		t.Error("expected error for empty object name")
	}
	if _, err := NewBase("mixer", nil); err == nil {
		t.Error("expected error for nil props")
	}
	if _, err := NewBase("mixer", 42); err == nil {
		t.Error("expected error for non-struct props")
	}
}
