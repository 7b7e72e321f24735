package users

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound: ningún usuario tiene la clave buscada.
	ErrNotFound = errors.New("person not found")
)

type Service struct {
	repo    Repository
	variant Variant
}

func NewService(repo Repository, variant Variant) *Service {
	if variant == "" {
		variant = VariantStrict
	}
	return &Service{
		repo:    repo,
		variant: variant,
	}
}

func (s *Service) Variant() Variant {
	return s.variant
}

// List devuelve todos los usuarios en orden de inserción.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Pets proyecta la mascota de cada usuario, mismo largo y orden que List.
func (s *Service) Pets(ctx context.Context) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0, len(all))
	for _, u := range all {
		out = append(out, u.Pet)
	}
	return out, nil
}

// AvailableKinds no depende de los datos guardados.
func (s *Service) AvailableKinds() []AnimalKind {
	return AvailableKinds(s.variant)
}

// Create agrega al final sin chequear duplicados.
func (s *Service) Create(ctx context.Context, u User) (User, error) {
	if err := s.repo.Append(ctx, u); err != nil {
		return User{}, fmt.Errorf("append user: %w", err)
	}
	return u, nil
}

// Replace sobrescribe el primer registro con Name == name.
// u.Name puede ser distinto de name (renombrado silencioso).
func (s *Service) Replace(ctx context.Context, name string, u User) error {
	if err := s.repo.Replace(ctx, name, u); err != nil {
		return fmt.Errorf("replace %q: %w", name, err)
	}
	return nil
}

// Delete quita el primer registro con Name == name y lo devuelve.
func (s *Service) Delete(ctx context.Context, name string) (User, error) {
	u, err := s.repo.Delete(ctx, name)
	if err != nil {
		return User{}, fmt.Errorf("delete %q: %w", name, err)
	}
	return u, nil
}
