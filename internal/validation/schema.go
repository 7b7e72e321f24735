package validation

// UserSchema describe el cuerpo de POST /create y PUT /update/{name}.
// Con kinds vacío pet.type acepta cualquier string.
func UserSchema(kinds []string) map[string]any {
	petType := map[string]any{"type": "string"}
	if len(kinds) > 0 {
		enum := make([]any, 0, len(kinds))
		for _, k := range kinds {
			enum = append(enum, k)
		}
		petType["enum"] = enum
	}

	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"name", "rating", "luck", "pet"},
		"properties": map[string]any{
			"name":   map[string]any{"type": "string"},
			"rating": map[string]any{"type": "integer"},
			"luck":   map[string]any{"type": "integer"},
			"pet": map[string]any{
				"type":     "object",
				"required": []string{"type", "name"},
				"properties": map[string]any{
					"type": petType,
					"name": map[string]any{"type": "string"},
				},
			},
		},
	}
}

func NewUserValidator(kinds []string) (*Validator, error) {
	return New("user.json", UserSchema(kinds))
}

// ItemSchema describe el cuerpo de POST /items/ y PUT /items/{item_id}.
func ItemSchema() map[string]any {
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"name", "price"},
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"price": map[string]any{"type": "number"},
		},
	}
}

func NewItemValidator() (*Validator, error) {
	return New("item.json", ItemSchema())
}
