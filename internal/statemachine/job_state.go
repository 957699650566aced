package statemachine

import (
	"errors"

	"github.com/mighty-stack/swiftship/internal/models"
)

// Transition defines a valid job state change and the action that causes it.
// The backend is the authority; this table only drives which actions a job
// view offers and pre-validates before a round trip.
type Transition struct {
	From   string
	Action string
	To     string
}

// validTransitions is the forward-only job lifecycle.
var validTransitions = []Transition{
	{From: models.JobAssigned, Action: ActionAccept, To: models.JobAccepted},
	{From: models.JobAccepted, Action: ActionStart, To: models.JobInProgress},
	{From: models.JobInProgress, Action: ActionComplete, To: models.JobDelivered},
}

// Actions a driver can request against a job, matching the backend's
// PUT /jobs/:id/<action> endpoints.
const (
	ActionAccept   = "accept"
	ActionStart    = "start"
	ActionComplete = "complete"
)

type transitionKey struct {
	From   string
	Action string
}

// Lookup map for O(1) validation
var transitionMap = func() map[transitionKey]string {
	m := make(map[transitionKey]string)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.Action}] = t.To
	}
	return m
}()

// NextStatus returns the status a job enters when action is applied from the
// given status, or an error when the action is not allowed there.
func NextStatus(from, action string) (string, error) {
	if to, ok := transitionMap[transitionKey{from, action}]; ok {
		return to, nil
	}
	return "", errors.New(
		"invalid transition: '" + action + "' is not allowed from status '" + from +
			"'. Valid actions: " + describeActionsFrom(from),
	)
}

// CanTransition reports whether action is allowed from the given status. On
// a disallowed action it returns the descriptive transition error, suitable
// for rendering directly.
func CanTransition(from, action string) error {
	_, err := NextStatus(from, action)
	return err
}

// ActionsFrom returns the actions available from a status, in lifecycle order.
func ActionsFrom(status string) []string {
	var actions []string
	for _, t := range validTransitions {
		if t.From == status {
			actions = append(actions, t.Action)
		}
	}
	return actions
}

func describeActionsFrom(status string) string {
	actions := ActionsFrom(status)
	if len(actions) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, a := range actions {
		if i > 0 {
			result += ", "
		}
		result += a
	}
	return result
}
