// Package lesson expone los endpoints sin estado del tutorial de items/products.
// No se guarda nada: cada handler devuelve su entrada ya parseada.
package lesson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"urban-people/internal/middleware"
	"urban-people/internal/platform/logger"
	"urban-people/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
	maxLimit     = 1000
)

// Item es el producto del tutorial.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type itemResponse struct {
	ItemID int     `json:"item_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

type itemRef struct {
	ItemID int `json:"item_id"`
}

type productResponse struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Details   string `json:"details,omitempty"`
}

type detailResponse struct {
	Detail []validation.Detail `json:"detail"`
}

func NewRouter(log logger.Logger) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	items, err := validation.NewItemValidator()
	if err != nil {
		panic(fmt.Sprintf("lesson: item schema: %v", err))
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
	})

	RegisterRoutes(r, items)
	return r
}

func RegisterRoutes(r chi.Router, items *validation.Validator) {
	r.Get("/", rootHandler)

	r.Route("/items", func(ir chi.Router) {
		ir.Get("/", listItemsHandler)
		ir.Post("/", createItemHandler(items))
		ir.Get("/{item_id}", getItemHandler)
		ir.Put("/{item_id}", updateItemHandler(items))
		ir.Delete("/{item_id}", deleteItemHandler)
	})

	r.Get("/products/{product_id}", getProductHandler)

	r.Get("/users/me", currentUserHandler)
	r.Get("/users/{user_id}", getUserHandler)
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello, FastAPI!"})
}

// getItemHandler: GET /items/{item_id}
func getItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "item_id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, itemRef{ItemID: id})
}

func createItemHandler(items *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Item
		if !decodeItem(w, r, items, &in) {
			return
		}
		writeJSON(w, http.StatusOK, in)
	}
}

func updateItemHandler(items *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "item_id")
		if !ok {
			return
		}
		var in Item
		if !decodeItem(w, r, items, &in) {
			return
		}
		writeJSON(w, http.StatusOK, itemResponse{ItemID: id, Name: in.Name, Price: in.Price})
	}
}

func deleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "item_id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Item deleted", "item_id": id})
}

// listItemsHandler devuelve item_id en [skip, skip+limit), con limit <= maxLimit.
func listItemsHandler(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(w, r, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", defaultLimit)
	if !ok {
		return
	}
	if limit > maxLimit {
		unprocessable(w, []string{"query", "limit"}, fmt.Sprintf("Input should be less than or equal to %d", maxLimit), validation.TypeLessThanEqual)
		return
	}

	out := make([]itemRef, 0, max(limit, 0))
	for n := 0; n < limit; n++ {
		out = append(out, itemRef{ItemID: skip + n})
		// sin desbordar int
		if skip+n == math.MaxInt {
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "product_id")
	if !ok {
		return
	}
	details, ok := queryBool(w, r, "details")
	if !ok {
		return
	}

	resp := productResponse{ProductID: id, Name: fmt.Sprintf("Product %d", id)}
	if details {
		resp.Details = "Detailed product information"
	}
	writeJSON(w, http.StatusOK, resp)
}

func currentUserHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"user": "This is the current user"})
}

func getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "user_id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": id, "name": fmt.Sprintf("User %d", id)})
}

func decodeItem(w http.ResponseWriter, r *http.Request, items *validation.Validator, dst *Item) bool {
	err := items.Decode(r.Body, dst)
	if err == nil {
		return true
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: verr.Details})
		return false
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal Server Error"})
	return false
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		unprocessable(w, []string{"path", name}, "Input should be a valid integer, unable to parse string as an integer", validation.TypeIntParsing)
		return 0, false
	}
	return n, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		unprocessable(w, []string{"query", name}, "Input should be a valid integer, unable to parse string as an integer", validation.TypeIntParsing)
		return 0, false
	}
	return n, true
}

func queryBool(w http.ResponseWriter, r *http.Request, name string) (bool, bool) {
	switch strings.ToLower(r.URL.Query().Get(name)) {
	case "":
		return false, true
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		unprocessable(w, []string{"query", name}, "Input should be a valid boolean, unable to interpret input", validation.TypeBoolParsing)
		return false, false
	}
}

func unprocessable(w http.ResponseWriter, loc []string, msg, typ string) {
	writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: validation.NewError(loc, msg, typ).Details})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
