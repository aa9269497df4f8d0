package lifecycle

import (
	"testing"
)

func TestActionsForEveryStatus(t *testing.T) {
	for _, s := range AllStatuses {
		actions, err := ActionsFor(s)
		if err != nil {
			t.Fatalf("ActionsFor(%s) returned error: %v", s, err)
		}

		if s == StatusCancelled {
			if len(actions) != 0 {
				t.Errorf("cancelled must be terminal, got %d actions", len(actions))
			}
			continue
		}

		if len(actions) == 0 {
			t.Errorf("ActionsFor(%s) is empty, only cancelled is terminal", s)
		}

		for _, a := range actions {
			if !IsValid(a.Target) {
				t.Errorf("ActionsFor(%s): target %q is not a valid status", s, a.Target)
			}
		}
	}
}

func TestActionsForUnknownStatus(t *testing.T) {
	if _, err := ActionsFor(Status("shipped")); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestAllowedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to payment pending", StatusPending, StatusPaymentMethodPending, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending straight to active", StatusPending, StatusActive, false},
		{"registered to scheduled", StatusPaymentMethodRegistered, StatusInstallationScheduled, true},
		{"scheduled reschedule", StatusInstallationScheduled, StatusInstallationScheduled, true},
		{"in progress to failed", StatusInstallationInProgress, StatusFailed, true},
		{"in progress to completed via plain update", StatusInstallationInProgress, StatusInstallationCompleted, false},
		{"completed to active via plain update", StatusInstallationCompleted, StatusActive, false},
		{"active to suspended", StatusActive, StatusSuspended, true},
		{"suspended back to active", StatusSuspended, StatusActive, true},
		{"failed back to scheduled", StatusFailed, StatusInstallationScheduled, true},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.from, tt.to); got != tt.want {
				t.Errorf("Allowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDedicatedFlowsExist(t *testing.T) {
	actions, err := ActionsFor(StatusInstallationCompleted)
	if err != nil {
		t.Fatal(err)
	}

	var hasActivation, hasUpload bool
	for _, a := range actions {
		switch a.Flow {
		case FlowActivation:
			hasActivation = true
			if a.Target != StatusActive {
				t.Errorf("activation flow target = %s, want active", a.Target)
			}
		case FlowUpload:
			hasUpload = true
			if !a.SideEffectOnly() {
				t.Error("upload flow must be side-effect only")
			}
			if a.Target != StatusInstallationCompleted {
				t.Errorf("upload flow must not change status, target = %s", a.Target)
			}
		}
	}

	if !hasActivation {
		t.Error("installation_completed must offer the activation flow")
	}
	if !hasUpload {
		t.Error("installation_completed must offer document upload")
	}
}

func TestRequiredInputs(t *testing.T) {
	a, err := Find(StatusPaymentMethodRegistered, StatusInstallationScheduled)
	if err != nil {
		t.Fatal(err)
	}
	if !a.RequiresDate {
		t.Error("scheduling an installation must require a date")
	}

	cancel, err := Find(StatusPending, StatusCancelled)
	if err != nil {
		t.Fatal(err)
	}
	if !cancel.RequiresNotes {
		t.Error("cancellation must require a reason")
	}

	resume, err := Find(StatusSuspended, StatusActive)
	if err != nil {
		t.Fatal(err)
	}
	if resume.RequiresNotes || resume.RequiresDate {
		t.Error("resuming a suspended service requires no input")
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(StatusCancelled) {
		t.Error("cancelled must be terminal")
	}
	if IsTerminal(StatusActive) {
		t.Error("active is not terminal")
	}
	if IsTerminal(Status("bogus")) {
		t.Error("unknown statuses are not terminal, they are invalid")
	}
}
