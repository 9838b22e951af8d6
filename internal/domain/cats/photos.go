package cats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cat-collector/internal/ports/objectstore"

	"github.com/google/uuid"
)

var ErrUploadFailed = errors.New("photo upload failed")

// UploadError se devuelve cuando el object store rechaza o falla la escritura.
// Es recuperable: el caller puede reintentar AddPhoto desde cero.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: key=%s: %v", ErrUploadFailed, e.Key, e.Err)
}

func (e *UploadError) Unwrap() []error { return []error{ErrUploadFailed, e.Err} }

// Estados de un intento de ingesta (van en los logs).
const (
	photoStateIdle         = "idle"
	photoStateUploading    = "uploading"
	photoStatePersisted    = "persisted"
	photoStateUploadFailed = "upload_failed"
)

type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (u PhotoUpload) empty() bool {
	return u.Body == nil || u.Size == 0
}

// AddPhoto sube los bytes y, solo si el upload se confirmó, persiste la fila.
// Sin archivo es un no-op: devuelve Photo{} y nil.
func (s *Service) AddPhoto(ctx context.Context, userID, catID string, in PhotoUpload) (Photo, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return Photo{}, err
	}

	if in.empty() {
		return Photo{}, nil
	}
	if s.photos.Store == nil || strings.TrimSpace(s.photos.Bucket) == "" {
		return Photo{}, &UploadError{Err: errors.New("object store not configured")}
	}

	key := NewPhotoKey(in.FileName)
	log := s.log.With(map[string]any{
		"cat_id": c.ID,
		"bucket": s.photos.Bucket,
		"key":    key,
	})
	log.Debug("photo ingestion", map[string]any{"state": photoStateIdle})

	upCtx := ctx
	if s.photos.Timeout > 0 {
		var cancel context.CancelFunc
		upCtx, cancel = context.WithTimeout(ctx, s.photos.Timeout)
		defer cancel()
	}

	log.Debug("photo ingestion", map[string]any{"state": photoStateUploading})
	if err := s.photos.Store.Put(upCtx, s.photos.Bucket, key, in.Body, in.ContentType); err != nil {
		log.Error("error uploading photo", map[string]any{
			"state": photoStateUploadFailed,
			"error": err,
		})
		return Photo{}, &UploadError{Key: key, Err: err}
	}

	p := Photo{
		ID:        uuid.NewString(),
		CatID:     c.ID,
		URL:       objectstore.PublicURL(s.photos.BaseURL, s.photos.Bucket, key),
		CreatedAt: s.now(),
	}
	if err := s.repo.CreatePhoto(ctx, p); err != nil {
		// el objeto queda huérfano en el bucket; la fila no existe
		log.Error("error persisting photo", map[string]any{"error": err})
		return Photo{}, err
	}

	log.Info("photo ingestion", map[string]any{
		"state":    photoStatePersisted,
		"photo_id": p.ID,
	})
	return p, nil
}

func (s *Service) ListPhotos(ctx context.Context, userID, catID string) ([]Photo, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPhotos(ctx, c.ID)
}

// NewPhotoKey genera una key aleatoria conservando la extensión original.
func NewPhotoKey(fileName string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id + filepath.Ext(filepath.Base(strings.TrimSpace(fileName)))
}
