package users

import "context"

// Repository es la colección ordenada de usuarios.
// Replace y Delete devuelven ErrNotFound si ninguna clave coincide.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Append(ctx context.Context, u User) error
	Replace(ctx context.Context, name string, u User) error
	Delete(ctx context.Context, name string) (User, error)
}
