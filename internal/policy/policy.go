// Package policy decides whether an identity may perform a recipe operation.
// It has no dependency on HTTP or storage.
package policy

import (
	"errors"

	"github.com/pageza/recipe-api/backend/internal/types"
)

// ErrForbidden is returned by Authorize when the policy denies an operation
var ErrForbidden = errors.New("forbidden")

// Operation names a guarded action
type Operation int

const (
	OpLogin Operation = iota
	OpRead
	OpCreate
	OpUpdate
	OpDelete
	OpDeleteAll
	OpListMine
)

func (op Operation) String() string {
	switch op {
	case OpLogin:
		return "login"
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpDeleteAll:
		return "delete-all"
	case OpListMine:
		return "list-mine"
	default:
		return "unknown"
	}
}

// Allow reports whether identity may perform op. owner is the createdBy of the
// target recipe and is only consulted for OpUpdate and OpDelete. A nil identity
// is anonymous and never passes a protected operation.
func Allow(identity *types.Identity, op Operation, owner string) bool {
	switch op {
	case OpLogin, OpRead:
		return true
	case OpCreate:
		return identity != nil
	case OpUpdate, OpDelete:
		if identity == nil {
			return false
		}
		return identity.Username == owner || identity.HasRole(types.RoleAdmin)
	case OpDeleteAll:
		return identity.HasRole(types.RoleAdmin)
	case OpListMine:
		return identity.HasRole(types.RoleClient)
	default:
		return false
	}
}

// Authorize is Allow with a typed error for the handler chain
func Authorize(identity *types.Identity, op Operation, owner string) error {
	if Allow(identity, op, owner) {
		return nil
	}
	return ErrForbidden
}
