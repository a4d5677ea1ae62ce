package role

import "DocSlot/apperrors"

const (
	ADMIN = "ADMIN"
	USER  = "USER"
)

// Principal is the caller as established by a verified session token.
type Principal struct {
	UserID  string `json:"_id"`
	IsAdmin bool   `json:"isAdmin"`
}

func (p Principal) Role() string {
	if p.IsAdmin {
		return ADMIN
	}
	return USER
}

// Rule decides whether p may act on the resource owned by target.
// target is empty for rules that do not look at a resource.
type Rule func(p Principal, target string) error

func AdminOnly(p Principal, _ string) error {
	if !p.IsAdmin {
		return apperrors.New(apperrors.KindForbidden, apperrors.ADMIN_ONLY)
	}
	return nil
}

func SelfOnly(p Principal, target string) error {
	if p.UserID == "" || p.UserID != target {
		return apperrors.New(apperrors.KindForbidden, apperrors.USER_MISMATCH)
	}
	return nil
}

func SelfOrAdmin(p Principal, target string) error {
	if p.IsAdmin || (p.UserID != "" && p.UserID == target) {
		return nil
	}
	return apperrors.New(apperrors.KindForbidden, apperrors.ADMIN_OR_USER_MISMATCH)
}
