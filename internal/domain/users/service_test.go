package users

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items   []User
	listErr error
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]User, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) Append(ctx context.Context, u User) error {
	r.items = append(r.items, u)
	return nil
}

func (r *testRepo) Replace(ctx context.Context, name string, u User) error {
	for i := range r.items {
		if r.items[i].Name == name {
			r.items[i] = u
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, name string) (User, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			u := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func mk(name string, rating int, pet string) User {
	return User{Name: name, Rating: rating, Luck: 3, Pet: Pet{Type: string(KindDog), Name: pet}}
}

func listNames(t *testing.T, svc *Service) []string {
	t.Helper()
	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := make([]string, 0, len(all))
	for _, u := range all {
		out = append(out, u.Name)
	}
	return out
}

// -------------------------
// Tests
// -------------------------

func TestService_Scenario_DeleteReplaceDeleteAgain(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []User{mk("A", 1, "pa"), mk("B", 2, "pb"), mk("C", 6, "pc")}}
	svc := NewService(repo, VariantStrict)

	removed, err := svc.Delete(ctx, "B")
	if err != nil {
		t.Fatalf("delete B: %v", err)
	}
	if removed.Name != "B" || removed.Rating != 2 {
		t.Fatalf("expected B's record, got %+v", removed)
	}
	if got := listNames(t, svc); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("expected [A C], got %v", got)
	}

	if err := svc.Replace(ctx, "A", mk("Z", 10, "pz")); err != nil {
		t.Fatalf("replace A: %v", err)
	}
	if got := listNames(t, svc); !reflect.DeepEqual(got, []string{"Z", "C"}) {
		t.Fatalf("expected [Z C], got %v", got)
	}

	_, err = svc.Delete(ctx, "B")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := listNames(t, svc); !reflect.DeepEqual(got, []string{"Z", "C"}) {
		t.Fatalf("expected [Z C] unchanged, got %v", got)
	}
}

func TestService_Create_AppendsLastAndAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{}, VariantLoose)

	for _, u := range []User{mk("A", 1, "x"), mk("A", 2, "y")} {
		got, err := svc.Create(ctx, u)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !reflect.DeepEqual(got, u) {
			t.Fatalf("expected stored record %+v, got %+v", u, got)
		}
	}

	all, _ := svc.List(ctx)
	if len(all) != 2 || all[1].Rating != 2 {
		t.Fatalf("expected duplicate appended last, got %+v", all)
	}
}

func TestService_Replace_NotFoundWrapsSentinel(t *testing.T) {
	svc := NewService(&testRepo{items: []User{mk("A", 1, "x")}}, VariantStrict)

	err := svc.Replace(context.Background(), "nobody", mk("Z", 1, "z"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := listNames(t, svc); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("expected unchanged [A], got %v", got)
	}
}

func TestService_Pets_MatchesListOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{items: []User{mk("A", 1, "pa"), mk("B", 2, "pb"), mk("C", 3, "pc")}}, VariantStrict)

	if _, err := svc.Delete(ctx, "A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(ctx, mk("D", 4, "pd")); err != nil {
		t.Fatalf("create: %v", err)
	}

	pets, err := svc.Pets(ctx)
	if err != nil {
		t.Fatalf("pets: %v", err)
	}
	all, _ := svc.List(ctx)
	if len(pets) != len(all) {
		t.Fatalf("expected %d pets, got %d", len(all), len(pets))
	}
	for i := range all {
		if pets[i] != all[i].Pet {
			t.Fatalf("pet %d mismatch: %+v vs %+v", i, pets[i], all[i].Pet)
		}
	}
}

func TestService_Pets_PropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&testRepo{listErr: boom}, VariantStrict)

	if _, err := svc.Pets(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestAvailableKinds_PerVariant(t *testing.T) {
	strict := AvailableKinds(VariantStrict)
	loose := AvailableKinds(VariantLoose)

	if len(strict) != 7 || len(loose) != 7 {
		t.Fatalf("expected 7 kinds each, got %d/%d", len(strict), len(loose))
	}
	if strict[2] != KindFish {
		t.Fatalf("expected strict[2]=%q, got %q", KindFish, strict[2])
	}
	if loose[2] != KindSnake {
		t.Fatalf("expected loose[2]=%q, got %q", KindSnake, loose[2])
	}

	strict[0] = "mutated"
	if AvailableKinds(VariantStrict)[0] != KindCat {
		t.Fatal("AvailableKinds must return a fresh copy")
	}
}

func TestNewService_DefaultsToStrict(t *testing.T) {
	svc := NewService(&testRepo{}, "")
	if svc.Variant() != VariantStrict {
		t.Fatalf("expected strict, got %q", svc.Variant())
	}
}

func TestSeedUsers_Shape(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	seeded := SeedUsers(VariantStrict, rnd)

	if len(seeded) != 5 {
		t.Fatalf("expected 5 seeded users, got %d", len(seeded))
	}

	allowed := map[string]bool{}
	for _, k := range AvailableKinds(VariantStrict) {
		allowed[string(k)] = true
	}

	factorials := []int{1, 2, 6, 24, 120}
	for i, u := range seeded {
		n := i + 1
		if want := "Хлопчик №" + string(rune('0'+n)); u.Name != want {
			t.Fatalf("expected name %q, got %q", want, u.Name)
		}
		if u.Rating != factorials[i] {
			t.Fatalf("expected rating %d, got %d", factorials[i], u.Rating)
		}
		if u.Luck < n || u.Luck > 10 {
			t.Fatalf("luck %d out of [%d,10]", u.Luck, n)
		}
		if !allowed[u.Pet.Type] {
			t.Fatalf("unexpected pet type %q", u.Pet.Type)
		}
		if want := "Животинка " + string(rune('0'+n)); u.Pet.Name != want {
			t.Fatalf("expected pet name %q, got %q", want, u.Pet.Name)
		}
	}
}

func TestSeed_LoadsRepo(t *testing.T) {
	repo := &testRepo{}
	if err := Seed(context.Background(), repo, VariantLoose, rand.New(rand.NewPCG(7, 7))); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(repo.items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(repo.items))
	}
}
