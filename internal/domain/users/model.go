package users

// AnimalKind es el tipo de animal de una mascota.
// Los valores son etiquetas literales; los clientes comparan contra ellas.
type AnimalKind string

const (
	KindCat       AnimalKind = "кот"
	KindDog       AnimalKind = "пёс"
	KindFish      AnimalKind = "рыбка"
	KindSnake     AnimalKind = "змея"
	KindParrot    AnimalKind = "попугай"
	KindHamster   AnimalKind = "хомяк"
	KindGuineaPig AnimalKind = "морская свинья"
	KindPig       AnimalKind = "обычная свинья"
)

// Variant selecciona cuál de los dos servicios se expone.
// @Enum strict, loose
type Variant string

const (
	// VariantStrict valida pet.type contra AvailableKinds y publica OpenAPI.
	VariantStrict Variant = "strict"
	// VariantLoose acepta cualquier string en pet.type.
	VariantLoose Variant = "loose"
)

func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case VariantStrict, VariantLoose:
		return Variant(s), true
	default:
		return "", false
	}
}

var (
	strictKinds = []AnimalKind{KindCat, KindDog, KindFish, KindParrot, KindHamster, KindGuineaPig, KindPig}
	looseKinds  = []AnimalKind{KindCat, KindDog, KindSnake, KindParrot, KindHamster, KindGuineaPig, KindPig}
)

// AvailableKinds devuelve la enumeración fija de tipos de animal para la variante.
// Siempre es una copia nueva.
func AvailableKinds(v Variant) []AnimalKind {
	src := strictKinds
	if v == VariantLoose {
		src = looseKinds
	}
	out := make([]AnimalKind, len(src))
	copy(out, src)
	return out
}

// Pet es la mascota anidada de un usuario.
type Pet struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// User es un registro del store. Name es la clave de búsqueda;
// se asume única pero nunca se valida.
type User struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Luck   int    `json:"luck"` // 1..10 nominal, sin validar
	Pet    Pet    `json:"pet"`
}
