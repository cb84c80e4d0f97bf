package openroute

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/domain/model/geo"
)

func testPoints(t *testing.T) (geo.Point, geo.Point) {
	t.Helper()
	origin, err := geo.NewPoint(-3.7038, 40.4168)
	require.NoError(t, err)
	destination, err := geo.NewPoint(-0.3763, 39.4699)
	require.NoError(t, err)
	return origin, destination
}

func Test_NewClient(t *testing.T) {
	t.Run("should return client when parameters are valid", func(t *testing.T) {
		client, err := NewClient("https://api.openrouteservice.org", "key")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("should return error when base URL is empty", func(t *testing.T) {
		client, err := NewClient("", "key")
		assert.Nil(t, client)
		assert.Error(t, err)
	})

	t.Run("should return error when API key is empty", func(t *testing.T) {
		client, err := NewClient("https://api.openrouteservice.org", "")
		assert.Nil(t, client)
		assert.Error(t, err)
	})
}

func Test_Client_GetRoute(t *testing.T) {
	t.Run("should decode route from directions response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, directionsPath, r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("Authorization"))

			var body directionsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Coordinates, 2)
			assert.Equal(t, []float64{-3.7038, 40.4168}, body.Coordinates[0])
			assert.Equal(t, []float64{-0.3763, 39.4699}, body.Coordinates[1])

			_, _ = w.Write([]byte(`{
				"features": [{
					"geometry": {"coordinates": [[-3.7038, 40.4168], [-2.1, 39.9], [-0.3763, 39.4699]]},
					"properties": {"summary": {"distance": 357412.5, "duration": 14831.2}}
				}]
			}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "secret")
		require.NoError(t, err)

		origin, destination := testPoints(t)
		route, err := client.GetRoute(context.Background(), origin, destination)
		require.NoError(t, err)

		assert.Len(t, route.Geometry, 3)
		assert.Equal(t, 357412.5, route.DistanceMeters)
		assert.Equal(t, 14831.2, route.DurationSeconds)
	})

	t.Run("should return error when provider responds with non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error": "invalid key"}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "bad")
		require.NoError(t, err)

		origin, destination := testPoints(t)
		_, err = client.GetRoute(context.Background(), origin, destination)
		assert.Error(t, err)
	})

	t.Run("should return error when response has no features", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"features": []}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "key")
		require.NoError(t, err)

		origin, destination := testPoints(t)
		_, err = client.GetRoute(context.Background(), origin, destination)
		assert.Error(t, err)
	})
}
