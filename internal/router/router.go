package router

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	mem "urban-people/internal/adapters/storage/memory"
	"urban-people/internal/docs"
	"urban-people/internal/domain/users"
	"urban-people/internal/middleware"
	"urban-people/internal/platform/logger"
	"urban-people/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Variant users.Variant // vacío = strict
	Logger  logger.Logger // nil = descarta logs

	// Opcional: si viene, se usa tal cual (sin seed). Si no, in-memory con 5 usuarios generados.
	Repo users.Repository

	// Fuente de aleatoriedad del seed; nil = basada en la hora.
	Rand *rand.Rand
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewUserRepo()
		rnd := opts.Rand
		if rnd == nil {
			seed := uint64(time.Now().UnixNano())
			rnd = rand.New(rand.NewPCG(seed, seed>>1))
		}
		// El repo in-memory no falla en Append.
		_ = users.Seed(context.Background(), repo, opts.Variant, rnd)
	}

	svc := users.NewService(repo, opts.Variant)

	var kinds []string
	if svc.Variant() == users.VariantStrict {
		for _, k := range svc.AvailableKinds() {
			kinds = append(kinds, string(k))
		}
	}
	bodies, err := validation.NewUserValidator(kinds)
	if err != nil {
		// Schema estático: solo falla por un error de programación.
		panic(fmt.Sprintf("router: user schema: %v", err))
	}

	users.RegisterRoutes(r, svc, bodies, log)

	if svc.Variant() == users.VariantStrict {
		r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/docs/index.html", http.StatusMovedPermanently)
		})
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
			httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
	}

	log.Info("router ready", map[string]any{"variant": string(svc.Variant())})
	return r
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
