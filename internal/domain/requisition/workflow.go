package requisition

import (
	"fmt"
	"time"

	"seismic-catalog/internal/domain/user"
)

type Action string

const (
	ActionApproveL2 Action = "approve_l2"
	ActionDeclineL2 Action = "decline_l2"
	ActionApproveL3 Action = "approve_l3"
	ActionDeclineL3 Action = "decline_l3"
)

type transition struct {
	from  Status
	to    Status
	level int
	roles []user.Role
}

// transitions is the whole workflow. Admin is allowed on every action in
// addition to the listed roles.
var transitions = map[Action]transition{
	ActionApproveL2: {from: StatusPendingL2, to: StatusL2Approved, level: 2, roles: []user.Role{user.RoleReadOnlyL2}},
	ActionDeclineL2: {from: StatusPendingL2, to: StatusL2Declined, level: 2, roles: []user.Role{user.RoleReadOnlyL2}},
	ActionApproveL3: {from: StatusL2Approved, to: StatusL3Approved, level: 3, roles: []user.Role{user.RoleReadOnlyL3}},
	ActionDeclineL3: {from: StatusL2Approved, to: StatusL3Declined, level: 3, roles: []user.Role{user.RoleReadOnlyL3}},
}

// Actions returns the decision actions in a stable order.
func Actions() []Action {
	return []Action{ActionApproveL2, ActionDeclineL2, ActionApproveL3, ActionDeclineL3}
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := transitions[a]; !ok {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}

// Roles returns the non-admin roles allowed to perform a.
func (a Action) Roles() []user.Role {
	t, ok := transitions[a]
	if !ok {
		return nil
	}
	return append([]user.Role(nil), t.roles...)
}

func (a Action) Approves() bool { return a == ActionApproveL2 || a == ActionApproveL3 }

// Permitted is the static allow-list for decisions.
func Permitted(role user.Role, a Action) bool {
	t, ok := transitions[a]
	if !ok {
		return false
	}
	if role == user.RoleAdmin {
		return true
	}
	for _, r := range t.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Next returns the status reached by applying a to current, or a
// *TransitionError when current is not the action's precondition.
func Next(current Status, a Action) (Status, error) {
	t, ok := transitions[a]
	if !ok {
		return "", fmt.Errorf("unknown action %q", a)
	}
	if current != t.from {
		return "", &TransitionError{Action: a, Current: current}
	}
	return t.to, nil
}

// Decision is a single approver verdict.
type Decision struct {
	Action     Action
	ApproverID string
	Comments   *string
	At         time.Time
}

// Apply moves r to its next status and records the approver fields of the
// decision's level. r is left untouched on error.
func Apply(r *Requisition, d Decision) error {
	next, err := Next(r.CurrentApprovalStatus, d.Action)
	if err != nil {
		return err
	}
	approver := d.ApproverID
	at := d.At.UTC()
	var comments *string
	if d.Comments != nil {
		c := *d.Comments
		comments = &c
	}

	switch transitions[d.Action].level {
	case 2:
		r.L2ApproverID, r.L2ApprovalDate, r.L2Comments = &approver, &at, comments
	case 3:
		r.L3ApproverID, r.L3ApprovalDate, r.L3Comments = &approver, &at, comments
	}
	r.CurrentApprovalStatus = next
	return nil
}
