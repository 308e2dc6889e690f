package requisition

import "seismic-catalog/internal/domain/user"

// Visibility is a disjunction of row predicates. Empty fields contribute no
// predicate; a Visibility with no predicate and All unset matches nothing.
type Visibility struct {
	All          bool
	RequesterID  string
	Status       Status
	L2ApproverID string
	L3ApproverID string
}

// VisibilityFor returns the rows a caller with role may list. Unrecognized
// roles only see fully approved requisitions.
func VisibilityFor(role user.Role, callerID string) Visibility {
	switch role {
	case user.RoleAdmin:
		return Visibility{All: true}
	case user.RoleDataEntry, user.RoleReadOnlyL1:
		return Visibility{RequesterID: callerID}
	case user.RoleReadOnlyL2:
		return Visibility{Status: StatusPendingL2, L2ApproverID: callerID}
	case user.RoleReadOnlyL3:
		return Visibility{Status: StatusL2Approved, L3ApproverID: callerID}
	default:
		return Visibility{Status: StatusL3Approved}
	}
}

func (v Visibility) Empty() bool {
	return !v.All && v.RequesterID == "" && v.Status == "" && v.L2ApproverID == "" && v.L3ApproverID == ""
}

func (v Visibility) Match(r *Requisition) bool {
	switch {
	case v.All:
		return true
	case v.RequesterID != "" && r.RequesterUserID == v.RequesterID:
		return true
	case v.Status != "" && r.CurrentApprovalStatus == v.Status:
		return true
	case v.L2ApproverID != "" && r.L2ApproverID != nil && *r.L2ApproverID == v.L2ApproverID:
		return true
	case v.L3ApproverID != "" && r.L3ApproverID != nil && *r.L3ApproverID == v.L3ApproverID:
		return true
	}
	return false
}
