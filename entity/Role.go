package entity

// Role is the caller's effective role. Customer is the absence of the others.
type Role int

const (
	RoleCustomer Role = iota
	RoleDeliveryCrew
	RoleManager
)

// GroupRoles lists the roles backed by a group, with their group names.
var GroupRoles = map[Role]string{
	RoleManager:      "Manager",
	RoleDeliveryCrew: "Delivery crew",
}

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleDeliveryCrew:
		return "delivery-crew"
	default:
		return "customer"
	}
}

// Principal is the authenticated caller as seen by services: identity plus
// the role memberships read for the current request.
type Principal struct {
	UserID  uint
	IsAdmin bool
	Roles   []Role
}

func (p Principal) Has(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role returns the highest role held. A user may sit in several groups at once.
func (p Principal) Role() Role {
	best := RoleCustomer
	for _, r := range p.Roles {
		if r > best {
			best = r
		}
	}
	return best
}

// CanManage reports manager-level privilege (manager group or admin flag).
func (p Principal) CanManage() bool {
	return p.IsAdmin || p.Has(RoleManager)
}
