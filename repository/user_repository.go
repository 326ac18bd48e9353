package repository

import (
	"context"

	"foodserver/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRow is the wire shape of a user record.
type UserRow struct {
	Phone   string `json:"userPhone"`
	Name    string `json:"name"`
	Address string `json:"address"`
	FBID    string `json:"fbid"`
}

// GET /api/users?fbid=
func (r *UserRepository) GetByFBID(ctx context.Context, fbid string) (*UserRow, error) {
	var u entity.User
	if err := r.DB.WithContext(ctx).Where("fbid = ?", fbid).First(&u).Error; err != nil {
		return nil, err
	}
	return &UserRow{Phone: u.Phone, Name: u.Name, Address: u.Address, FBID: u.FBID}, nil
}

func (r *UserRepository) FBIDExists(ctx context.Context, fbid string) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.User{}).Where("fbid = ?", fbid).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// Upsert updates name and address of an existing row, or inserts the
// full record when the fbid is unknown.
func (r *UserRepository) Upsert(ctx context.Context, u *entity.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&entity.User{}).Where("fbid = ?", u.FBID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return tx.Model(&entity.User{}).Where("fbid = ?", u.FBID).
				Updates(map[string]any{"name": u.Name, "address": u.Address}).Error
		}
		return tx.Create(u).Error
	})
}
