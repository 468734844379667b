package valueobjects

import (
	"errors"
	"math"
)

// EarthRadiusKm é o raio médio usado no cálculo de haversine
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates é um ponto geográfico em graus decimais
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinates valida os intervalos de latitude e longitude
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Latitude: lat, Longitude: lng}, nil
}

// DistanceKm retorna a distância de grande círculo (haversine) em quilômetros
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := toRadians(c.Latitude)
	lat2 := toRadians(other.Latitude)
	dLat := lat2 - lat1
	dLng := toRadians(other.Longitude - c.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// BoundingBox retorna os limites de um quadrado que contém o raio informado.
// Serve como pré-filtro barato no banco antes do cálculo exato.
func (c Coordinates) BoundingBox(radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi
	minLat = math.Max(-90, c.Latitude-dLat)
	maxLat = math.Min(90, c.Latitude+dLat)

	cosLat := math.Cos(toRadians(c.Latitude))
	if cosLat < 1e-9 || maxLat >= 90 || minLat <= -90 {
		return minLat, maxLat, -180, 180
	}
	dLng := dLat / cosLat
	minLng = c.Longitude - dLng
	maxLng = c.Longitude + dLng
	if minLng < -180 || maxLng > 180 {
		return minLat, maxLat, -180, 180
	}
	return minLat, maxLat, minLng, maxLng
}

// RoundTo arredonda para a quantidade informada de casas decimais
func RoundTo(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(value*p) / p
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
