package storeproc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sublime_ops/internal/config"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.SaleProcedureConfig{}, logger.NewNop())
	assert.ErrorIs(t, err, ErrMissingRPCBaseURL)
}

func TestClient_ProcessSale(t *testing.T) {
	t.Run("posts the procedure params and relays the result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/rpc/process_sale", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var params map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, "+221771234567", params["p_phone"])
			assert.Equal(t, "p-1", params["p_product_id"])
			assert.Equal(t, float64(2), params["p_qty"])
			assert.Equal(t, float64(9000), params["p_total"])
			assert.Equal(t, "Appel Direct", params["p_source"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"message":"Vente enregistrée"}`))
		}))
		defer srv.Close()

		client, err := NewClient(config.SaleProcedureConfig{BaseURL: srv.URL, APIKey: "test-key"}, logger.NewNop())
		require.NoError(t, err)

		res, err := client.ProcessSale(context.Background(), interfaces.SaleRequest{
			Phone:     "+221771234567",
			ProductID: "p-1",
			Quantity:  2,
			TotalCFA:  9000,
			Source:    "Appel Direct",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Vente enregistrée", res.Message)
	})

	t.Run("structured rejection is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"Stock insuffisant"}`))
		}))
		defer srv.Close()

		client, err := NewClient(config.SaleProcedureConfig{BaseURL: srv.URL}, logger.NewNop())
		require.NoError(t, err)

		res, err := client.ProcessSale(context.Background(), interfaces.SaleRequest{
			Phone: "+22177", ProductID: "p-1", Quantity: 99,
		})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Stock insuffisant", res.Message)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client, err := NewClient(config.SaleProcedureConfig{BaseURL: srv.URL}, logger.NewNop())
		require.NoError(t, err)

		_, err = client.ProcessSale(context.Background(), interfaces.SaleRequest{
			Phone: "+22177", ProductID: "p-1", Quantity: 1,
		})
		assert.ErrorContains(t, err, "503")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client, err := NewClient(config.SaleProcedureConfig{BaseURL: srv.URL}, logger.NewNop())
		require.NoError(t, err)

		_, err = client.ProcessSale(context.Background(), interfaces.SaleRequest{
			Phone: "+22177", ProductID: "p-1", Quantity: 1,
		})
		assert.ErrorContains(t, err, "unexpected body")
	})
}
