package records

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clinickit/clinickit/core"
	"github.com/clinickit/clinickit/pkg/authn"
	"github.com/clinickit/clinickit/pkg/roles"
	"github.com/clinickit/clinickit/pkg/tenant"
)

// Router assembles the record endpoints with the full isolation chain:
// credential verification, tenant resolution, then per-route
// authorization before any handler, and therefore any persistence,
// runs. Tenant resolution is fail-closed here: a caller whose credential
// resolves no clinic has no business reading records.
func Router(store *Store, verifier *authn.Verifier) chi.Router {
	r := chi.NewRouter()

	r.Use(authn.Middleware(verifier))
	r.Use(tenant.Middleware(tenant.WithRequireTenant(true)))

	staff := roles.Require(roles.Admin, roles.Veterinarian, roles.Staff)

	r.Route("/pets", func(r chi.Router) {
		r.With(staff).Get("/", listPets(store))
		r.With(staff).Post("/", createPet(store))
		r.With(staff).Get("/{petID}", getPet(store))
		r.With(roles.Require(roles.Admin)).Delete("/{petID}", deletePet(store))

		r.Route("/{petID}/visits", func(r chi.Router) {
			r.With(staff).Get("/", listVisits(store))
			r.With(roles.Require(roles.Admin, roles.Veterinarian)).Post("/", addVisit(store))
		})
	})

	return r
}

func listPets(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := store.ListPets(r.Context())
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, pets)
	}
}

func getPet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		pet, err := store.GetPet(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, pet)
	}
}

func createPet(store *Store) http.HandlerFunc {
	type request struct {
		Name      string `json:"name"`
		Species   string `json:"species"`
		BirthDate string `json:"birth_date"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		pet, err := store.CreatePet(r.Context(), Pet{Name: req.Name, Species: req.Species})
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusCreated, pet)
	}
}

func deletePet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		if err := store.DeletePet(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listVisits(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		visits, err := store.ListVisits(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, visits)
	}
}

func addVisit(store *Store) http.HandlerFunc {
	type request struct {
		Description string `json:"description"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.WriteError(w, core.ErrBadRequest)
			return
		}

		visit, err := store.AddVisit(r.Context(), id, Visit{Description: req.Description})
		if err != nil {
			writeStoreError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusCreated, visit)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		core.WriteError(w, core.ErrNotFound)
		return
	}
	core.WriteError(w, err)
}
