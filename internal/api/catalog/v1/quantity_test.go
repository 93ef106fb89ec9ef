package catalogv1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Quantity
	}{
		{name: "integer", raw: `3`, want: 3},
		{name: "numeric string", raw: `"4"`, want: 4},
		{name: "whole float", raw: `2.0`, want: 2},
		{name: "exponent", raw: `1e1`, want: 10},
		{name: "negative kept for the service to skip", raw: `-1`, want: -1},
		{name: "fraction", raw: `1.5`, want: 0},
		{name: "text", raw: `"dos"`, want: 0},
		{name: "null", raw: `null`, want: 0},
		{name: "object", raw: `{"n":1}`, want: 0},
		{name: "bool", raw: `true`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &q))
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestCreateOrderRequestKeepsGoodLines(t *testing.T) {
	t.Parallel()

	body := `{"products":[{"productId":"a","quantity":"2"},{"productId":"b","quantity":0.5},{"productId":"c","quantity":1}],` +
		`"customerName":"Ana","customerPhone":"1155"}`

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Len(t, req.Products, 3)
	assert.Equal(t, []Quantity{2, 0, 1}, []Quantity{
		req.Products[0].Quantity,
		req.Products[1].Quantity,
		req.Products[2].Quantity,
	})
}
