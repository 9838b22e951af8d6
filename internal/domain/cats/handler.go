package cats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	photoFormField       = "photo-file"
	defaultMaxUploadSize = 10 << 20
)

func RegisterRoutes(r chi.Router, svc *Service, maxUploadSize int64) {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	r.Route("/cats", func(cr chi.Router) {
		cr.Get("/", listCatsHandler(svc))
		cr.Post("/", createCatHandler(svc))

		cr.Route("/{catID}", func(one chi.Router) {
			one.Get("/", getCatHandler(svc))
			one.Patch("/", updateCatHandler(svc))
			one.Delete("/", deleteCatHandler(svc))

			one.Get("/feedings", listFeedingsHandler(svc))
			one.Post("/feedings", addFeedingHandler(svc))

			// Asociación M2M con juguetes (idempotente)
			one.Put("/toys/{toyID}", associateToyHandler(svc))
			one.Delete("/toys/{toyID}", dissociateToyHandler(svc))

			one.Get("/photos", listPhotosHandler(svc))
			one.Post("/photos", addPhotoHandler(svc, maxUploadSize))
		})
	})
}

type createCatRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Description string `json:"description"`
	Age         int    `json:"age"`
}

type updateCatRequest struct {
	Breed       *string `json:"breed"`
	Description *string `json:"description"`
	Age         *int    `json:"age"`

	// Solo para detectar "name" y rechazarlo; no se aplica.
	Name *json.RawMessage `json:"name" swaggerignore:"true"`
}

type addFeedingRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Meal string `json:"meal" enums:"breakfast,lunch,dinner"`
}

type catResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type feedingResponse struct {
	ID    string `json:"id"`
	CatID string `json:"cat_id"`
	Date  string `json:"date"`
	Meal  Meal   `json:"meal"`
}

type photoResponse struct {
	ID        string    `json:"id"`
	CatID     string    `json:"cat_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type catDetailResponse struct {
	catResponse
	FedForToday   bool               `json:"fed_for_today"`
	Feedings      []feedingResponse  `json:"feedings"`
	Photos        []photoResponse    `json:"photos"`
	Toys          []toys.ToyResponse `json:"toys"`
	AvailableToys []toys.ToyResponse `json:"available_toys"`
}

// listCatsHandler godoc
// @Summary Listar gatos del usuario
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token o Basic"
// @Success 200 {array} catResponse
// @Failure 401 {string} string "unauthorized"
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createCatHandler godoc
// @Summary Crear gato
// @Tags cats
// @Accept json
// @Produce json
// @Param payload body createCatRequest true "age >= 0; el nombre no se puede cambiar después"
// @Success 201 {object} catResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /cats [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Description: req.Description,
			Age:         req.Age,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// getCatHandler godoc
// @Summary Detalle de gato
// @Description Incluye feedings, fotos, juguetes asociados y juguetes del usuario que el gato no tiene.
// @Tags cats
// @Produce json
// @Param catID path string true "ID del gato"
// @Success 200 {object} catDetailResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.GetDetail(r.Context(), claims.UserID, chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCatDetailResponse(d, time.Now().UTC()))
	}
}

// updateCatHandler godoc
// @Summary Actualizar gato
// @Description Solo breed, description y age. Enviar "name" devuelve 400.
// @Tags cats
// @Accept json
// @Produce json
// @Param catID path string true "ID del gato"
// @Param payload body updateCatRequest true "Campos a modificar"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid input / name is immutable"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [patch]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateCatRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Name != nil {
			http.Error(w, "name is immutable", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "catID"), UpdateInput{
			Breed:       req.Breed,
			Description: req.Description,
			Age:         req.Age,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

func deleteCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "catID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listFeedingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListFeedings(r.Context(), claims.UserID, chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toFeedingResponses(items))
	}
}

// addFeedingHandler godoc
// @Summary Registrar feeding
// @Tags cats
// @Accept json
// @Produce json
// @Param catID path string true "ID del gato"
// @Param payload body addFeedingRequest true "date YYYY-MM-DD; meal breakfast|lunch|dinner"
// @Success 201 {object} feedingResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/feedings [post]
func addFeedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.AddFeeding(r.Context(), claims.UserID, chi.URLParam(r, "catID"), FeedingInput{
			Date: req.Date,
			Meal: req.Meal,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toFeedingResponse(f))
	}
}

func associateToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.AssociateToy(r.Context(), claims.UserID, chi.URLParam(r, "catID"), chi.URLParam(r, "toyID"))
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func dissociateToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.DissociateToy(r.Context(), claims.UserID, chi.URLParam(r, "catID"), chi.URLParam(r, "toyID"))
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listPhotosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListPhotos(r.Context(), claims.UserID, chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPhotoResponses(items))
	}
}

// addPhotoHandler godoc
// @Summary Subir foto
// @Description multipart/form-data con el campo `photo-file`. Sin archivo responde 204 sin efectos.
// @Tags cats
// @Accept multipart/form-data
// @Produce json
// @Param catID path string true "ID del gato"
// @Param photo-file formData file false "Imagen"
// @Success 201 {object} photoResponse
// @Success 204 "sin archivo, no-op"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Failure 502 {string} string "photo upload failed"
// @Router /cats/{catID}/photos [post]
func addPhotoHandler(svc *Service, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		var in PhotoUpload
		file, header, err := r.FormFile(photoFormField)
		switch {
		case err == nil:
			defer file.Close()
			in = PhotoUpload{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Body:        file,
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			// sin archivo: no-op
		default:
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		p, err := svc.AddPhoto(r.Context(), claims.UserID, catID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		if p.ID == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusCreated, toPhotoResponse(p))
	}
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Name:        c.Name,
		Breed:       c.Breed,
		Description: c.Description,
		Age:         c.Age,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCatDetailResponse(d CatDetail, now time.Time) catDetailResponse {
	return catDetailResponse{
		catResponse:   toCatResponse(d.Cat),
		FedForToday:   FedForToday(d.Feedings, now),
		Feedings:      toFeedingResponses(d.Feedings),
		Photos:        toPhotoResponses(d.Photos),
		Toys:          toys.ToToyResponses(d.Toys),
		AvailableToys: toys.ToToyResponses(d.AvailableToys),
	}
}

func toFeedingResponse(f Feeding) feedingResponse {
	return feedingResponse{
		ID:    f.ID,
		CatID: f.CatID,
		Date:  f.Date.Format(DateLayout),
		Meal:  f.Meal,
	}
}

func toFeedingResponses(items []Feeding) []feedingResponse {
	out := make([]feedingResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFeedingResponse(f))
	}
	return out
}

func toPhotoResponse(p Photo) photoResponse {
	return photoResponse{
		ID:        p.ID,
		CatID:     p.CatID,
		URL:       p.URL,
		CreatedAt: p.CreatedAt,
	}
}

func toPhotoResponses(items []Photo) []photoResponse {
	out := make([]photoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPhotoResponse(p))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	case errors.Is(err, toys.ErrNotFound):
		http.Error(w, "toy not found", http.StatusNotFound)
	case errors.Is(err, ErrToyNotOwned):
		http.Error(w, ErrToyNotOwned.Error(), http.StatusForbidden)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrUploadFailed):
		http.Error(w, ErrUploadFailed.Error(), http.StatusBadGateway)
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
