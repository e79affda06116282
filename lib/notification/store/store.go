package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (dbmodels.Notification, error)
	GetList(userID string, limit int) (list []dbmodels.Notification, err error)
	GetUnread(userID string) (list []dbmodels.Notification, err error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (dbmodels.Notification, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return dbmodels.Notification{}, err
	}
	return rec, nil
}

func (i impl) GetList(userID string, limit int) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetUnread(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Update("is_read", true).
		Error
}
