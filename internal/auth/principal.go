package auth

import "context"

type Role string

const (
	RoleCustomer   Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Principal is the authenticated caller, decoded once from a verified token.
// It is either a CustomerPrincipal or an AdminPrincipal.
type Principal interface {
	Subject() string
	Role() Role
}

type CustomerPrincipal struct {
	UserID string
	Phone  string
}

func (p CustomerPrincipal) Subject() string { return p.UserID }
func (p CustomerPrincipal) Role() Role      { return RoleCustomer }

type AdminPrincipal struct {
	UserID string
	Email  string
	Super  bool
}

func (p AdminPrincipal) Subject() string { return p.UserID }

func (p AdminPrincipal) Role() Role {
	if p.Super {
		return RoleSuperAdmin
	}
	return RoleAdmin
}

func IsAdmin(p Principal) bool {
	_, ok := p.(AdminPrincipal)
	return ok
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p != nil
}
