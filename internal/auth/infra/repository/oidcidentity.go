package repository

import (
	"context"
	"errors"
	"time"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainidentity "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidcidentity"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OIDCIdentityModel struct {
	UserID    string    `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;foreignKey:UserID;references:ID"`
	Provider  string    `gorm:"type:text;not null;primaryKey"`
	Subject   string    `gorm:"type:text;not null;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OIDCIdentityModel) TableName() string {
	return "auth_oidc_identities"
}

type oidcIdentityRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewOIDCIdentityRepository(db *gorm.DB) domainidentity.OIDCIdentityRepository {
	return NewOIDCIdentityRepositoryWithClock(db, &clock.RealClock{})
}

func NewOIDCIdentityRepositoryWithClock(db *gorm.DB, clk clock.Clock) domainidentity.OIDCIdentityRepository {
	return &oidcIdentityRepository{
		db:    db,
		clock: clk,
	}
}

func (r *oidcIdentityRepository) SaveOIDCIdentity(ctx context.Context, identity *domainidentity.OIDCIdentity) error {
	if identity == nil {
		return ErrIdentityRequired
	}

	record := OIDCIdentityModel{
		UserID:    identity.UserID().String(),
		Provider:  string(identity.Provider()),
		Subject:   identity.Subject(),
		CreatedAt: r.clock.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).
		Error
}

func (r *oidcIdentityRepository) GetOIDCIdentityByProviderSubject(
	ctx context.Context,
	provider domainoidc.ProviderID,
	subject string,
) (*domainidentity.OIDCIdentity, error) {
	var record OIDCIdentityModel
	if err := r.db.WithContext(ctx).
		Where("provider = ? AND subject = ?", provider, subject).
		First(&record).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainidentity.ErrOIDCIdentityNotFound
		}

		return nil, err
	}

	return record.toDomain()
}

func (m OIDCIdentityModel) toDomain() (*domainidentity.OIDCIdentity, error) {
	userID, err := user.NewIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	return domainidentity.NewOIDCIdentity(userID, domainoidc.ProviderID(m.Provider), m.Subject)
}
