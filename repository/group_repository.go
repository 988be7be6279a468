package repository

import (
	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository owns the groups table and the user_groups join table.
type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GroupIDsForUser returns the ids of every group the user belongs to.
func (r *GroupRepository) GroupIDsForUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Table("user_groups").Where("user_id = ?", userID).Pluck("group_id", &ids).Error
	return ids, err
}

func (r *GroupRepository) ListMembers(groupID uint, p Paging) ([]entity.User, int64, error) {
	base := r.DB.Model(&entity.User{}).
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ?", groupID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []entity.User
	if err := p.apply(base).Order("users.id ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindMember returns the user only while it belongs to the group.
func (r *GroupRepository) FindMember(groupID, userID uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ? AND users.id = ?", groupID, userID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_groups").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// AddMember is idempotent: (user_id, group_id) is the join table's primary key.
func (r *GroupRepository) AddMember(groupID, userID uint) error {
	return r.DB.Table("user_groups").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]any{"user_id": userID, "group_id": groupID}).Error
}

// RemoveMember deletes the membership row only; it reports whether one existed.
func (r *GroupRepository) RemoveMember(groupID, userID uint) (bool, error) {
	res := r.DB.Exec("DELETE FROM user_groups WHERE group_id = ? AND user_id = ?", groupID, userID)
	return res.RowsAffected > 0, res.Error
}
