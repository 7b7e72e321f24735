package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"urban-people/internal/platform/logger"
	"urban-people/internal/validation"

	"github.com/go-chi/chi/v5"
)

const (
	msgUpdated  = "Информация успешно изменена"
	msgNotFound = "Person wasn't found"
)

func RegisterRoutes(r chi.Router, svc *Service, bodies *validation.Validator, log logger.Logger) {
	r.Get("/", listUsersHandler(svc, log))
	r.Get("/pets", listPetsHandler(svc, log))
	r.Get("/available_pets", availablePetsHandler(svc))

	r.Post("/create", createUserHandler(svc, bodies, log))
	r.Put("/update/{name}", updateUserHandler(svc, bodies, log))
	r.Delete("/delete/{name}", deleteUserHandler(svc, log))
}

// ErrorResponse es el cuerpo de los 404/500.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse es el cuerpo de los 422.
type ValidationErrorResponse struct {
	Detail []validation.Detail `json:"detail"`
}

// listUsersHandler godoc
// @Summary Lista de usuarios
// @Description Devuelve todos los usuarios en orden de inserción.
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Router / [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.List(r.Context())
		if err != nil {
			internalError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// listPetsHandler godoc
// @Summary Lista de mascotas
// @Description La mascota de cada usuario, en el mismo orden que GET /.
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.Pets(r.Context())
		if err != nil {
			internalError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, pets)
	}
}

// availablePetsHandler godoc
// @Summary Tipos de animal disponibles
// @Tags pets
// @Produce json
// @Success 200 {array} string
// @Router /available_pets [get]
func availablePetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.AvailableKinds())
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Agrega el usuario al final de la lista. No se chequean nombres duplicados.
// @Tags users
// @Accept json
// @Produce json
// @Param user body User true "Usuario"
// @Success 200 {object} User
// @Failure 422 {object} ValidationErrorResponse
// @Router /create [post]
func createUserHandler(svc *Service, bodies *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in User
		if err := bodies.Decode(r.Body, &in); err != nil {
			badBody(w, log, err)
			return
		}

		u, err := svc.Create(r.Context(), in)
		if err != nil {
			internalError(w, log, err)
			return
		}

		log.Info("user_created", map[string]any{"name": u.Name})
		writeJSON(w, http.StatusOK, u)
	}
}

// updateUserHandler godoc
// @Summary Modificar usuario
// @Description Reemplaza completo el primer usuario con ese nombre. El nombre nuevo puede ser distinto.
// @Tags users
// @Accept json
// @Produce json
// @Param name path string true "Nombre del usuario a modificar"
// @Param user body User true "Usuario"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /update/{name} [put]
func updateUserHandler(svc *Service, bodies *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathName(r)

		var in User
		if err := bodies.Decode(r.Body, &in); err != nil {
			badBody(w, log, err)
			return
		}

		if err := svc.Replace(r.Context(), name, in); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: msgNotFound})
				return
			}
			internalError(w, log, err)
			return
		}

		log.Info("user_updated", map[string]any{"name": name, "new_name": in.Name})
		writeJSON(w, http.StatusOK, msgUpdated)
	}
}

// deleteUserHandler godoc
// @Summary Eliminar usuario
// @Description Quita el primer usuario con ese nombre y lo devuelve.
// @Tags users
// @Produce json
// @Param name path string true "Nombre del usuario a eliminar"
// @Success 200 {object} User
// @Failure 404 {object} ErrorResponse
// @Router /delete/{name} [delete]
func deleteUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathName(r)

		u, err := svc.Delete(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: msgNotFound})
				return
			}
			internalError(w, log, err)
			return
		}

		log.Info("user_deleted", map[string]any{"name": name})
		writeJSON(w, http.StatusOK, u)
	}
}

// pathName devuelve {name} decodificado. chi rutea sobre RawPath cuando existe,
// y en ese caso el parámetro llega escapado.
func pathName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

func badBody(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Details})
		return
	}
	internalError(w, log, err)
}

func internalError(w http.ResponseWriter, log logger.Logger, err error) {
	log.Error("internal_error", map[string]any{"error": err.Error()})
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
}

// writeJSON está duplicado en lesson para no crear un paquete helper por una función.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
