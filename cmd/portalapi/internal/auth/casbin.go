package auth

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var casbinModelContent string

//go:embed policy.csv
var casbinPolicyContent string

// Policy objects and actions.
const (
	ObjectContent  = "content"
	ObjectProgress = "progress"
	ObjectProfile  = "profile"
	ObjectRole     = "role"

	ActionRead    = "read"
	ActionWrite   = "write"
	ActionReadAny = "read-any"
)

// Roles. admin inherits user, user inherits guest.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// ValidRole reports whether role is one of the built-in roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// InitEnforcer creates a Casbin enforcer with the embedded model and policy.
// Roles live in the database; the policy only maps roles to permissions.
func InitEnforcer() (casbin.IEnforcer, error) {
	m, err := model.NewModelFromString(casbinModelContent)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	if err := loadPolicy(enforcer, casbinPolicyContent); err != nil {
		return nil, err
	}
	return enforcer, nil
}

func loadPolicy(enforcer casbin.IEnforcer, content string) error {
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		var err error
		switch fields[0] {
		case "p":
			_, err = enforcer.AddPolicy(fields[1:])
		case "g":
			_, err = enforcer.AddGroupingPolicy(fields[1:])
		default:
			err = fmt.Errorf("unknown policy type %q", fields[0])
		}
		if err != nil {
			return fmt.Errorf("load casbin policy line %d: %w", i+1, err)
		}
	}
	return nil
}
