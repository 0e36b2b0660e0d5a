package e2e

import (
	"context"
	"net/http"
	"testing"
)

// /allOrders は常にJSON配列（注文ゼロ件なら空配列）
func Test_Orders_ListIsJSONArray(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/allOrders", nil)
	requireStatus(t, resp, http.StatusOK, body)

	orders := mustDecodeOrders(t, body)
	for _, o := range orders {
		if o.ID == 0 {
			t.Fatalf("order without id: %+v", o)
		}
	}
}
