package memory

import (
	"context"
	"sync"

	"urban-people/internal/domain/users"
)

// userRepo guarda los usuarios en un slice ordenado.
// Un solo lock cubre toda la colección; cada operación es un scan completo.
type userRepo struct {
	mu    sync.RWMutex
	items []users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		items: make([]users.User, 0),
	}
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *userRepo) Append(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, u)
	return nil
}

func (r *userRepo) Replace(ctx context.Context, name string, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return users.ErrNotFound
	}
	r.items[i] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, name string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return users.User{}, users.ErrNotFound
	}
	removed := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	return removed, nil
}

// indexOf: primer match exacto, -1 si no hay. Requiere mu tomado.
func (r *userRepo) indexOf(name string) int {
	for i, u := range r.items {
		if u.Name == name {
			return i
		}
	}
	return -1
}
