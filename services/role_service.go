package services

import (
	"errors"
	"fmt"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RoleService manages manager / delivery-crew membership. Group ids are
// resolved once at construction; requests never look groups up by name.
type RoleService struct {
	Groups *repository.GroupRepository
	Users  *repository.UserRepository
	Log    *logrus.Logger

	groupIDs map[entity.Role]uint
	roleByID map[uint]entity.Role
}

func NewRoleService(groups *repository.GroupRepository, users *repository.UserRepository, log *logrus.Logger) (*RoleService, error) {
	s := &RoleService{
		Groups:   groups,
		Users:    users,
		Log:      log,
		groupIDs: make(map[entity.Role]uint, len(entity.GroupRoles)),
		roleByID: make(map[uint]entity.Role, len(entity.GroupRoles)),
	}
	for role, name := range entity.GroupRoles {
		g, err := groups.FindByName(name)
		if err != nil {
			return nil, fmt.Errorf("resolve group %q: %w", name, err)
		}
		s.groupIDs[role] = g.ID
		s.roleByID[g.ID] = role
	}
	return s, nil
}

func (s *RoleService) groupID(role entity.Role) (uint, error) {
	id, ok := s.groupIDs[role]
	if !ok {
		return 0, apperr.NotFound("role %s has no group", role)
	}
	return id, nil
}

// Principal reads the user's current memberships.
func (s *RoleService) Principal(userID uint) (entity.Principal, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Principal{}, apperr.Unauthorized("user no longer exists")
		}
		return entity.Principal{}, err
	}
	ids, err := s.Groups.GroupIDsForUser(u.ID)
	if err != nil {
		return entity.Principal{}, err
	}
	p := entity.Principal{UserID: u.ID, IsAdmin: u.IsAdmin}
	for _, id := range ids {
		if role, ok := s.roleByID[id]; ok {
			p.Roles = append(p.Roles, role)
		}
	}
	return p, nil
}

func (s *RoleService) IsMember(role entity.Role, userID uint) (bool, error) {
	gid, err := s.groupID(role)
	if err != nil {
		return false, err
	}
	return s.Groups.IsMember(gid, userID)
}

func (s *RoleService) ListMembers(role entity.Role, p repository.Paging) ([]entity.User, int64, error) {
	gid, err := s.groupID(role)
	if err != nil {
		return nil, 0, err
	}
	return s.Groups.ListMembers(gid, p)
}

// Assign adds the named user to the role. Assigning twice keeps one membership.
func (s *RoleService) Assign(role entity.Role, username string) (*entity.User, error) {
	gid, err := s.groupID(role)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %q not found", username)
		}
		return nil, err
	}
	if err := s.Groups.AddMember(gid, u.ID); err != nil {
		return nil, err
	}
	s.Log.WithFields(logrus.Fields{"role": role.String(), "userId": u.ID}).Info("role assigned")
	return u, nil
}

func (s *RoleService) Member(role entity.Role, userID uint) (*entity.User, error) {
	gid, err := s.groupID(role)
	if err != nil {
		return nil, err
	}
	u, err := s.Groups.FindMember(gid, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d is not a %s", userID, role)
		}
		return nil, err
	}
	return u, nil
}

// Remove drops the membership; the user account stays.
func (s *RoleService) Remove(role entity.Role, userID uint) error {
	gid, err := s.groupID(role)
	if err != nil {
		return err
	}
	removed, err := s.Groups.RemoveMember(gid, userID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("user %d is not a %s", userID, role)
	}
	s.Log.WithFields(logrus.Fields{"role": role.String(), "userId": userID}).Info("role removed")
	return nil
}
