package toys

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/toys", func(tr chi.Router) {
		tr.Get("/", listToysHandler(svc))
		tr.Post("/", createToyHandler(svc))

		tr.Get("/{toyID}", getToyHandler(svc))
		tr.Patch("/{toyID}", updateToyHandler(svc))
		tr.Delete("/{toyID}", deleteToyHandler(svc))
	})
}

type createToyRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateToyRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// ToyResponse se reutiliza en el detalle de gatos (toys asociados / disponibles).
type ToyResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listToysHandler godoc
// @Summary Listar juguetes del usuario
// @Tags toys
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} ToyResponse
// @Failure 401 {string} string "unauthorized"
// @Router /toys [get]
func listToysHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ToToyResponses(items))
	}
}

// createToyHandler godoc
// @Summary Crear juguete
// @Tags toys
// @Accept json
// @Produce json
// @Param payload body createToyRequest true "Nombre y color"
// @Success 201 {object} ToyResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /toys [post]
func createToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createToyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:  req.Name,
			Color: req.Color,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToToyResponse(t))
	}
}

func getToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		t, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "toyID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToToyResponse(t))
	}
}

func updateToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateToyRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "toyID"), UpdateInput{
			Name:  req.Name,
			Color: req.Color,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToToyResponse(t))
	}
}

func deleteToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "toyID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToToyResponse(t Toy) ToyResponse {
	return ToyResponse{
		ID:          t.ID,
		OwnerUserID: t.OwnerUserID,
		Name:        t.Name,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToToyResponses(items []Toy) []ToyResponse {
	out := make([]ToyResponse, 0, len(items))
	for _, t := range items {
		out = append(out, ToToyResponse(t))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "toy not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
