package oidcidentity

import (
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
)

// Key identifies an end-user at a provider. Subjects are only unique per
// issuer, so the provider is part of the key.
type Key struct {
	Provider domainoidc.ProviderID
	Subject  string
}

// OIDCIdentity links a local user to a provider account.
type OIDCIdentity struct {
	userID user.ID
	key    Key
}

func NewOIDCIdentity(userID user.ID, provider domainoidc.ProviderID, subject string) (*OIDCIdentity, error) {
	if userID == (user.ID{}) {
		return nil, ErrUserIDEmpty
	}

	if provider == "" {
		return nil, ErrProviderEmpty
	}

	if subject == "" {
		return nil, ErrSubjectEmpty
	}

	return &OIDCIdentity{
		userID: userID,
		key:    Key{Provider: provider, Subject: subject},
	}, nil
}

func (i *OIDCIdentity) UserID() user.ID {
	return i.userID
}

func (i *OIDCIdentity) Provider() domainoidc.ProviderID {
	return i.key.Provider
}

func (i *OIDCIdentity) Subject() string {
	return i.key.Subject
}

func (i *OIDCIdentity) Key() Key {
	return i.key
}

// CheckOwner returns ErrOIDCIdentityConflict when the identity is already
// linked to another user.
func (i *OIDCIdentity) CheckOwner(userID user.ID) error {
	if i.userID != userID {
		return ErrOIDCIdentityConflict
	}

	return nil
}
