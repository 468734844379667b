package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/config"
)

const reverseGeocodePath = "/maps/api/geocode/json"

// GoogleGeocoder implementa ports.Geocoder com a Geocoding API do Google
type GoogleGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleGeocoder cria o cliente com o timeout configurado
func NewGoogleGeocoder(cfg config.GeocodingConfig) *GoogleGeocoder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &GoogleGeocoder{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	query := url.Values{}
	query.Set("latlng", formatCoordinate(latitude)+","+formatCoordinate(longitude))
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+reverseGeocodePath+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(body.Results) > 0 {
		return body.Results[0].FormattedAddress, nil
	}

	// ZERO_RESULTS é a resposta normal para coordenadas sem endereço
	if body.Status == "" || body.Status == "OK" || body.Status == "ZERO_RESULTS" {
		return "", ports.ErrLocationNotFound
	}

	return "", fmt.Errorf("geocode status %s: %s", body.Status, body.ErrorMessage)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
