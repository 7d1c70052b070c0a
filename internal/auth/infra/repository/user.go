package repository

import (
	"context"
	"errors"
	"time"

	domainuser "github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "auth_users"
}

func getUserByID(ctx context.Context, db *gorm.DB, id domainuser.ID) (*domainuser.User, error) {
	var record UserModel
	if err := db.WithContext(ctx).First(&record, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainuser.ErrUserNotFound
		}

		return nil, err
	}

	userID, err := domainuser.NewIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	return domainuser.NewUser(userID), nil
}
