package repository

import (
	"context"
	"errors"

	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	domainidentity "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidcidentity"
	domainuser "github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userWithIdentityRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewUserWithIdentityRepository(db *gorm.DB) appoidc.UserWithOIDCIdentityRepository {
	return NewUserWithIdentityRepositoryWithClock(db, &clock.RealClock{})
}

func NewUserWithIdentityRepositoryWithClock(db *gorm.DB, clk clock.Clock) appoidc.UserWithOIDCIdentityRepository {
	return &userWithIdentityRepository{
		db:    db,
		clock: clk,
	}
}

func (r *userWithIdentityRepository) GetUserByID(ctx context.Context, id domainuser.ID) (*domainuser.User, error) {
	return getUserByID(ctx, r.db, id)
}

// SaveUserWithOIDCIdentity creates the user and links the identity in one
// transaction. An identity already linked to another user yields
// ErrOIDCIdentityConflict and nothing is written.
func (r *userWithIdentityRepository) SaveUserWithOIDCIdentity(
	ctx context.Context,
	u *domainuser.User,
	identity *domainidentity.OIDCIdentity,
) error {
	if u == nil {
		return ErrUserRequired
	}

	if identity == nil {
		return ErrIdentityRequired
	}

	now := r.clock.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing OIDCIdentityModel

		lookup := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("provider = ? AND subject = ?", identity.Provider(), identity.Subject()).
			First(&existing)

		if lookup.Error != nil && !errors.Is(lookup.Error, gorm.ErrRecordNotFound) {
			return lookup.Error
		}

		if lookup.Error == nil {
			return checkIdentityOwner(existing, u.ID())
		}

		userRecord := UserModel{
			ID:        u.ID().String(),
			CreatedAt: now,
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&userRecord).Error; err != nil {
			return err
		}

		identityRecord := OIDCIdentityModel{
			UserID:    u.ID().String(),
			Provider:  string(identity.Provider()),
			Subject:   identity.Subject(),
			CreatedAt: now,
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "subject"}},
			DoNothing: true,
		}).Create(&identityRecord)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// A concurrent transaction linked the identity first.
			if err := tx.
				Where("provider = ? AND subject = ?", identity.Provider(), identity.Subject()).
				First(&existing).Error; err != nil {
				return err
			}

			return checkIdentityOwner(existing, u.ID())
		}

		return nil
	})
}

func checkIdentityOwner(record OIDCIdentityModel, userID domainuser.ID) error {
	stored, err := record.toDomain()
	if err != nil {
		return err
	}

	return stored.CheckOwner(userID)
}

// Migrate creates the tables used by the gorm repositories.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&UserModel{}, &OIDCIdentityModel{})
}
