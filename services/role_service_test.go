package services

import (
	"testing"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"
)

func TestAssign_Idempotent(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "carol")

	for i := 0; i < 2; i++ {
		if _, err := f.roles.Assign(entity.RoleManager, "carol"); err != nil {
			t.Fatalf("assign #%d: %v", i+1, err)
		}
	}

	users, total, err := f.roles.ListMembers(entity.RoleManager, repository.Paging{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].ID != p.UserID {
		t.Fatalf("members = %+v (total %d), want only carol", users, total)
	}

	var rows int64
	if err := f.db.Table("user_groups").Where("user_id = ?", p.UserID).Count(&rows).Error; err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	if rows != 1 {
		t.Fatalf("membership rows = %d, want 1", rows)
	}
}

func TestAssign_UnknownUser(t *testing.T) {
	f := newFixture(t)
	if _, err := f.roles.Assign(entity.RoleDeliveryCrew, "ghost"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "dave", entity.RoleDeliveryCrew)

	if _, err := f.roles.Member(entity.RoleDeliveryCrew, p.UserID); err != nil {
		t.Fatalf("member: %v", err)
	}
	if err := f.roles.Remove(entity.RoleDeliveryCrew, p.UserID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.roles.Remove(entity.RoleDeliveryCrew, p.UserID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("second remove err = %v, want not found", err)
	}
	if _, err := f.roles.Member(entity.RoleDeliveryCrew, p.UserID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("member after remove err = %v, want not found", err)
	}
	if _, err := f.users.FindByID(p.UserID); err != nil {
		t.Fatalf("user account removed with membership: %v", err)
	}
}

func TestPrincipal_EffectiveRole(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name      string
		roles     []entity.Role
		admin     bool
		want      entity.Role
		canManage bool
	}{
		{"customer", nil, false, entity.RoleCustomer, false},
		{"delivery crew", []entity.Role{entity.RoleDeliveryCrew}, false, entity.RoleDeliveryCrew, false},
		{"manager", []entity.Role{entity.RoleManager}, false, entity.RoleManager, true},
		{"both groups", []entity.Role{entity.RoleDeliveryCrew, entity.RoleManager}, false, entity.RoleManager, true},
		{"admin without group", nil, true, entity.RoleCustomer, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := f.user(t, "user"+string(rune('a'+i)), tt.roles...)
			if tt.admin {
				if err := f.db.Model(&entity.User{}).Where("id = ?", p.UserID).Update("is_admin", true).Error; err != nil {
					t.Fatalf("set admin: %v", err)
				}
				var err error
				if p, err = f.roles.Principal(p.UserID); err != nil {
					t.Fatalf("principal: %v", err)
				}
			}
			if p.Role() != tt.want {
				t.Fatalf("role = %s, want %s", p.Role(), tt.want)
			}
			if p.CanManage() != tt.canManage {
				t.Fatalf("CanManage = %v, want %v", p.CanManage(), tt.canManage)
			}
		})
	}
}

func TestPrincipal_DeletedUser(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "erin")
	if err := f.db.Delete(&entity.User{}, p.UserID).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.roles.Principal(p.UserID); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
}
