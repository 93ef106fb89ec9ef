package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/frio-catalog/internal/model"
)

func TestBuildOrderCreated(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c8c9e-7a43-4c1e-9d55-2b8a1c3e4f50")
	msg, err := BuildOrderCreated(model.OrderCreated{
		OrderID:   id,
		TotalARS:  73225,
		TotalUSD:  50.5,
		Summary:   "• 1× cable_tipo *x*",
		CreatedAt: time.Date(2025, 10, 3, 14, 5, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, msg, "*Nueva orden* `"+id.String()+"`")
	assert.Contains(t, msg, `• 1× cable\_tipo \*x\*`)
	assert.Contains(t, msg, "Total: 73.225,00 ARS (50,50 USD)")
	assert.Contains(t, msg, "Creada: 03/10/2025 14:05")
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", escapeMarkdown("plain"))
	assert.Equal(t, "\\[a\\]\\_b\\`", escapeMarkdown("[a]_b`"))
}
