package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Action string

const (
	ActionApprove  Action = "approve"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// transitionMap lists the statuses each action may fire from. Every booking
// starts at pending; completed and cancelled are terminal.
var transitionMap = map[Action][]Status{
	ActionApprove:  {StatusPending},
	ActionCancel:   {StatusPending, StatusConfirmed},
	ActionComplete: {StatusConfirmed},
}

var actionTarget = map[Action]Status{
	ActionApprove:  StatusConfirmed,
	ActionCancel:   StatusCancelled,
	ActionComplete: StatusCompleted,
}

func ValidTransition(action Action, fromStatus Status) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// Target returns the status an action moves a booking into.
func Target(action Action) Status {
	return actionTarget[action]
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
