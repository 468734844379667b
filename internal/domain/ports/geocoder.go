package ports

//go:generate mockgen -source=geocoder.go -destination=mocks/geocoder_mock.go -package=mocks

import (
	"context"
	"errors"
)

// ErrLocationNotFound indica que o provedor respondeu sem resultados
var ErrLocationNotFound = errors.New("location not found")

// Geocoder converte coordenadas em um endereço legível
type Geocoder interface {
	// ReverseGeocode retorna ErrLocationNotFound quando não há endereço para as coordenadas
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}
