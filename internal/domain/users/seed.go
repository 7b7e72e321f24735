package users

import (
	"context"
	"fmt"
	"math/rand/v2"
)

const seedCount = 5

// SeedUsers genera los cinco usuarios iniciales:
// nombre "Хлопчик №n", rating n!, luck en [n, 10] y una mascota de tipo aleatorio.
func SeedUsers(variant Variant, rnd *rand.Rand) []User {
	kinds := AvailableKinds(variant)

	out := make([]User, 0, seedCount)
	rating := 1
	for n := 1; n <= seedCount; n++ {
		rating *= n
		out = append(out, User{
			Name:   fmt.Sprintf("Хлопчик №%d", n),
			Rating: rating,
			Luck:   n + rnd.IntN(10-n+1),
			Pet: Pet{
				Type: string(kinds[rnd.IntN(len(kinds))]),
				Name: fmt.Sprintf("Животинка %d", n),
			},
		})
	}
	return out
}

// Seed carga SeedUsers en el repo.
func Seed(ctx context.Context, repo Repository, variant Variant, rnd *rand.Rand) error {
	for _, u := range SeedUsers(variant, rnd) {
		if err := repo.Append(ctx, u); err != nil {
			return fmt.Errorf("seed %q: %w", u.Name, err)
		}
	}
	return nil
}
