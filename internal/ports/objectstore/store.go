package objectstore

import (
	"context"
	"io"
	"strings"
)

// Store escribe bytes en un bucket externo. Put solo devuelve nil cuando el
// objeto quedó confirmado como escrito.
type Store interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
}

// PublicURL arma la URL pública: {baseURL}{bucket}/{key}.
// Si baseURL no termina en "/" se agrega.
func PublicURL(baseURL, bucket, key string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + bucket + "/" + key
}
