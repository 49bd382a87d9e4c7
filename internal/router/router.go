package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	mem "pettrackr/internal/adapters/storage/memory"
	"pettrackr/internal/adapters/storage/sqlite"
	"pettrackr/internal/config"
	"pettrackr/internal/domain/daycare"
	"pettrackr/internal/domain/grooming"
	"pettrackr/internal/domain/pets"
	"pettrackr/internal/domain/vaccinations"
	"pettrackr/internal/domain/vetvisits"
	"pettrackr/internal/images"
	"pettrackr/internal/middleware"
	"pettrackr/internal/platform/logger"
)

type Options struct {
	Cfg config.Config
	Log logger.Logger

	// Opcional: si viene, usa los stores sqlite. Si no, in-memory.
	Stores *sqlite.Stores
}

func New(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	var (
		petRepo   pets.Repository
		vaxRepo   vaccinations.Repository
		visitRepo vetvisits.Repository
		dcRepo    daycare.Repository
		groomRepo grooming.Repository
	)

	if opts.Stores != nil {
		petRepo = opts.Stores.Pets
		vaxRepo = opts.Stores.Vaccinations
		visitRepo = opts.Stores.VetVisits
		dcRepo = opts.Stores.Daycare
		groomRepo = opts.Stores.Grooming
	} else {
		memVax := mem.NewVaccinationsRepo()
		memVisits := mem.NewVetVisitsRepo()
		petRepo = mem.NewPetRepo(memVax, memVisits)
		vaxRepo = memVax
		visitRepo = memVisits
		dcRepo = mem.NewDaycareRepo()
		groomRepo = mem.NewGroomingRepo()
	}

	var imgStore pets.ImageStore
	if opts.Cfg.DataDir != "" {
		st, err := images.NewStore(opts.Cfg.DataDir)
		if err != nil {
			return nil, err
		}
		imgStore = st
	}

	// Services por módulo
	vaxSvc := vaccinations.NewService(vaxRepo, opts.Cfg.Pricing.Vaccines, log)
	visitSvc := vetvisits.NewService(visitRepo, log)
	dcSvc := daycare.NewService(dcRepo, opts.Cfg.Pricing.Daycare, log)
	groomSvc := grooming.NewService(groomRepo, opts.Cfg.Pricing.Grooming, log)

	petsSvc := pets.NewService(petRepo, imgStore, pets.Deps{
		Vaccinations: vaxSvc,
		VetVisits:    visitSvc,
		Daycare:      dcSvc,
		Grooming:     groomSvc,
	}, log)

	r.Get("/health", healthHandler(opts.Stores))

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	vaccinations.RegisterRoutes(r, vaxSvc)
	vetvisits.RegisterRoutes(r, visitSvc)
	daycare.RegisterRoutes(r, dcSvc)
	grooming.RegisterRoutes(r, groomSvc)

	return r, nil
}

// healthHandler reporta el estado de cada store. Sin stores (modo
// in-memory) responde ok a secas.
func healthHandler(stores *sqlite.Stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if stores == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		status := http.StatusOK
		out := make(map[string]string)
		for file, err := range stores.Ping(r.Context()) {
			if err != nil {
				status = http.StatusServiceUnavailable
				out[file] = err.Error()
			} else {
				out[file] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(out)
	}
}
