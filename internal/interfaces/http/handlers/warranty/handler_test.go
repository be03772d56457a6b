package warranty

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantly/internal/application/warranty/usecases"
	"warrantly/internal/interfaces/http/handlers/testutil"
	"warrantly/internal/shared/biztime"
	"warrantly/internal/shared/errors"
)

type mockResolveWarrantyUC struct {
	query  usecases.ResolveWarrantyQuery
	result *usecases.ResolveWarrantyResult
	err    error
}

func (m *mockResolveWarrantyUC) Execute(_ context.Context, query usecases.ResolveWarrantyQuery) (*usecases.ResolveWarrantyResult, error) {
	m.query = query
	return m.result, m.err
}

func TestResolve(t *testing.T) {
	biztime.MustInit("Asia/Jakarta")

	t.Run("resolves warranty for SKU and order date", func(t *testing.T) {
		uc := &mockResolveWarrantyUC{
			result: &usecases.ResolveWarrantyResult{
				SKU:            "TRC-SEDAN-BLK",
				ProductType:    "TRAPO CLASSIC",
				DurationMonths: 12,
				ExpiryDate:     time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
				IsValid:        true,
			},
		}
		h := NewHandler(uc)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/warranty/resolve", nil)
		testutil.SetQueryParams(c, map[string]string{
			"sku":        "TRC-SEDAN-BLK",
			"order_date": "2026-01-15",
		})
		h.Resolve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "TRC-SEDAN-BLK", uc.query.SKU)
		assert.Equal(t, 2026, uc.query.OrderDate.Year())
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		h := NewHandler(&mockResolveWarrantyUC{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/warranty/resolve", nil)
		h.Resolve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
		assert.Len(t, resp.Error.Fields, 2)
	})

	t.Run("rejects malformed order date", func(t *testing.T) {
		h := NewHandler(&mockResolveWarrantyUC{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/warranty/resolve", nil)
		testutil.SetQueryParams(c, map[string]string{
			"sku":        "TRC-SEDAN-BLK",
			"order_date": "15/01/2026",
		})
		h.Resolve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps rule lookup failure to 503", func(t *testing.T) {
		uc := &mockResolveWarrantyUC{err: errors.NewRuleLookupError("warranty rule lookup failed")}
		h := NewHandler(uc)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/warranty/resolve", nil)
		testutil.SetQueryParams(c, map[string]string{
			"sku":        "TRC-SEDAN-BLK",
			"order_date": "2026-01-15",
		})
		h.Resolve(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
