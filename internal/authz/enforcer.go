package authz

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/sirupsen/logrus"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/user"
)

// admin inherits every approver role through g.
const modelText = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act
`

// Enforcer decides which roles may take which requisition actions.
type Enforcer struct {
	enforcer *casbin.Enforcer
	logger   *logrus.Entry
}

// NewEnforcer builds an in-memory casbin enforcer seeded from the workflow's
// allow-list.
func NewEnforcer(logger *logrus.Logger) (*Enforcer, error) {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithField("component", "authz")
	} else {
		entry = logrus.WithField("component", "authz")
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: failed to parse model: %w", err)
	}
	enf, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: failed to initialize enforcer: %w", err)
	}

	policies, groupings := defaultPolicy()
	if _, err := enf.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("authz: failed to load policies: %w", err)
	}
	if _, err := enf.AddGroupingPolicies(groupings); err != nil {
		return nil, fmt.Errorf("authz: failed to load role groupings: %w", err)
	}
	return &Enforcer{enforcer: enf, logger: entry}, nil
}

func defaultPolicy() (policies [][]string, groupings [][]string) {
	inherited := map[user.Role]bool{}
	for _, a := range requisition.Actions() {
		for _, r := range a.Roles() {
			policies = append(policies, []string{string(r), string(a)})
			if !inherited[r] {
				inherited[r] = true
				groupings = append(groupings, []string{string(user.RoleAdmin), string(r)})
			}
		}
	}
	return policies, groupings
}

// Allowed reports whether role may perform action.
func (e *Enforcer) Allowed(ctx context.Context, role user.Role, action requisition.Action) (bool, error) {
	ok, err := e.enforcer.Enforce(string(role), string(action))
	if err != nil {
		return false, fmt.Errorf("authz: enforce failed: %w", err)
	}
	if !ok {
		e.logger.WithContext(ctx).WithFields(logrus.Fields{
			"subject": role,
			"action":  action,
		}).Warn("authz denied request")
	}
	return ok, nil
}
