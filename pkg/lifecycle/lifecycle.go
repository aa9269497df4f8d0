package lifecycle

import "fmt"

// Status is the order lifecycle status. Orders move between statuses only
// through the transition table below; nothing else may set a status.
type Status string

const (
	StatusPending                 Status = "pending"
	StatusPaymentMethodPending    Status = "payment_method_pending"
	StatusPaymentMethodRegistered Status = "payment_method_registered"
	StatusInstallationScheduled   Status = "installation_scheduled"
	StatusInstallationInProgress  Status = "installation_in_progress"
	StatusInstallationCompleted   Status = "installation_completed"
	StatusActive                  Status = "active"
	StatusSuspended               Status = "suspended"
	StatusFailed                  Status = "failed"
	StatusCancelled               Status = "cancelled"
)

// AllStatuses lists every valid status, in lifecycle order.
var AllStatuses = []Status{
	StatusPending,
	StatusPaymentMethodPending,
	StatusPaymentMethodRegistered,
	StatusInstallationScheduled,
	StatusInstallationInProgress,
	StatusInstallationCompleted,
	StatusActive,
	StatusSuspended,
	StatusFailed,
	StatusCancelled,
}

// Flow identifies which submission flow handles an action. Plain status
// changes go through the generic status update; the rest have dedicated
// endpoints (installation completion, activation, document upload).
type Flow string

const (
	FlowStatusUpdate Flow = "status_update"
	FlowCompletion   Flow = "completion"
	FlowActivation   Flow = "activation"
	FlowUpload       Flow = "upload_document"
)

// Action is one permissible move from a given status.
type Action struct {
	Target        Status // unchanged for FlowUpload
	Label         string
	Flow          Flow
	RequiresNotes bool
	RequiresDate  bool
	// Reschedule marks the self-transition back to installation_scheduled.
	Reschedule bool
}

// SideEffectOnly reports whether the action leaves the status untouched.
func (a Action) SideEffectOnly() bool {
	return a.Flow == FlowUpload
}

// transitions is built once at init and never mutated.
var transitions = map[Status][]Action{
	StatusPending: {
		{Target: StatusPaymentMethodPending, Label: "Request Payment Method", Flow: FlowStatusUpdate},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusPaymentMethodPending: {
		{Target: StatusPaymentMethodRegistered, Label: "Mark Payment Method Registered", Flow: FlowStatusUpdate},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusPaymentMethodRegistered: {
		{Target: StatusInstallationScheduled, Label: "Schedule Installation", Flow: FlowStatusUpdate, RequiresNotes: true, RequiresDate: true},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusInstallationScheduled: {
		{Target: StatusInstallationInProgress, Label: "Start Installation", Flow: FlowStatusUpdate},
		{Target: StatusInstallationScheduled, Label: "Reschedule Installation", Flow: FlowStatusUpdate, RequiresNotes: true, RequiresDate: true, Reschedule: true},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusInstallationInProgress: {
		{Target: StatusInstallationCompleted, Label: "Complete Installation", Flow: FlowCompletion},
		{Target: StatusInstallationScheduled, Label: "Reschedule Installation", Flow: FlowStatusUpdate, RequiresNotes: true, RequiresDate: true, Reschedule: true},
		{Target: StatusFailed, Label: "Mark Installation Failed", Flow: FlowStatusUpdate, RequiresNotes: true},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusInstallationCompleted: {
		{Target: StatusActive, Label: "Activate Service", Flow: FlowActivation},
		{Target: StatusInstallationCompleted, Label: "Upload Installation Document", Flow: FlowUpload},
		{Target: StatusFailed, Label: "Mark Failed", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusActive: {
		{Target: StatusSuspended, Label: "Suspend Service", Flow: FlowStatusUpdate, RequiresNotes: true},
		{Target: StatusActive, Label: "Upload Installation Document", Flow: FlowUpload},
		{Target: StatusCancelled, Label: "Cancel Service", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusSuspended: {
		{Target: StatusActive, Label: "Reactivate Service", Flow: FlowStatusUpdate},
		{Target: StatusCancelled, Label: "Cancel Service", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	StatusFailed: {
		{Target: StatusInstallationScheduled, Label: "Reschedule Installation", Flow: FlowStatusUpdate, RequiresNotes: true, RequiresDate: true},
		{Target: StatusCancelled, Label: "Cancel Order", Flow: FlowStatusUpdate, RequiresNotes: true},
	},
	// cancelled is terminal
	StatusCancelled: {},
}

// IsValid reports whether s is a member of the status enumeration.
func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Status) bool {
	actions, ok := transitions[s]
	return ok && len(actions) == 0
}

// ActionsFor returns the permissible actions from the given status.
// Unknown statuses get an error instead of silently falling through.
func ActionsFor(s Status) ([]Action, error) {
	actions, ok := transitions[s]
	if !ok {
		return nil, fmt.Errorf("unknown order status: %q", s)
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out, nil
}

// Find returns the action moving from -> to via the generic status-update
// flow. Dedicated flows (completion, activation, upload) have their own
// endpoints and are not reachable through a plain status PATCH.
func Find(from, to Status) (Action, error) {
	actions, ok := transitions[from]
	if !ok {
		return Action{}, fmt.Errorf("unknown order status: %q", from)
	}
	for _, a := range actions {
		if a.Target == to && a.Flow == FlowStatusUpdate {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("transition %s -> %s is not allowed", from, to)
}

// Allowed reports whether from -> to is a legal generic status change.
func Allowed(from, to Status) bool {
	_, err := Find(from, to)
	return err == nil
}
