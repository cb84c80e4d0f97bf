// Package openroute implements the RouteService port against the
// OpenRouteService directions API.
package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/pkg/errs"
)

// directionsPath is the driving-hgv GeoJSON directions endpoint.
const directionsPath = "/v2/directions/driving-hgv/geojson"

const defaultTimeout = 10 * time.Second

// Client calls the OpenRouteService directions API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a directions client for the given base URL and API key.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// directionsResponse covers the parts of the GeoJSON FeatureCollection the
// route document needs: the LineString geometry and the summary figures.
type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute returns the driving route from origin to destination.
func (c *Client) GetRoute(ctx context.Context, origin, destination geo.Point) (geo.Route, error) {
	body, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{
			{origin.Longitude(), origin.Latitude()},
			{destination.Longitude(), destination.Latitude()},
		},
	})
	if err != nil {
		return geo.Route{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+directionsPath, bytes.NewReader(body))
	if err != nil {
		return geo.Route{}, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Route{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return geo.Route{}, fmt.Errorf("openroute: directions request failed with status %d: %s", resp.StatusCode, payload)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return geo.Route{}, err
	}
	if len(decoded.Features) == 0 {
		return geo.Route{}, fmt.Errorf("openroute: no route between %v and %v", origin, destination)
	}

	feature := decoded.Features[0]
	return geo.Route{
		Geometry:        feature.Geometry.Coordinates,
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
	}, nil
}
