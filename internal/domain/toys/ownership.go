package toys

import "context"

// OwnerOf expone el ownerUserID de un juguete.
// Lo usa el módulo cats para validar asociaciones sin depender del repo.
func (s *Service) OwnerOf(ctx context.Context, toyID string) (string, error) {
	t, err := s.GetByID(ctx, toyID)
	if err != nil {
		return "", err
	}
	return t.OwnerUserID, nil
}
