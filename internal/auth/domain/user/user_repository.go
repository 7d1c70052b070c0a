package user

import "context"

type UserRepository interface {
	GetUserByID(ctx context.Context, id ID) (*User, error)
}
