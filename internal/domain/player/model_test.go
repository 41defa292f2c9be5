package player

import (
	"errors"
	"testing"
)

func TestApply_UnavailableStatusClearsConvocation(t *testing.T) {
	for _, status := range []ConvocationStatus{StatusInjured, StatusSentOff} {
		base := Player{Name: "Rossi", Position: PositionMidfielder, ConvocationStatus: StatusAvailable, IsConvocato: true}
		called := true
		got := base.Apply(Patch{ConvocationStatus: &status, IsConvocato: &called})
		if got.IsConvocato {
			t.Fatalf("status %s: expected IsConvocato=false", status)
		}
		if got.ConvocationStatus != status {
			t.Fatalf("unexpected status: %s", got.ConvocationStatus)
		}
	}
}

func TestApply_AvailableKeepsConvocation(t *testing.T) {
	status := StatusAvailable
	base := Player{Name: "Bianchi", Position: PositionDefender, ConvocationStatus: StatusInjured, IsConvocato: true}
	got := base.Apply(Patch{ConvocationStatus: &status})
	if !got.IsConvocato {
		t.Fatalf("expected IsConvocato to stay true")
	}
}

func TestApply_NormalizesCase(t *testing.T) {
	status := ConvocationStatus("infortunato")
	got := Player{IsConvocato: true}.Apply(Patch{ConvocationStatus: &status})
	if got.ConvocationStatus != StatusInjured || got.IsConvocato {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Player{Name: "Verdi", ShirtNumber: 1, Position: PositionGoalkeeper, ConvocationStatus: StatusAvailable}
	if err := valid.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	invalid := valid
	invalid.Position = "STRIKER"
	if err := invalid.Validate(); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}
