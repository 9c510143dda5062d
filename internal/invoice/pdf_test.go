package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rma-service/internal/domain"
)

func TestGenerate(t *testing.T) {
	cases := []domain.RMACase{
		{ID: 1, Brand: "Acme", Model: "X1", Problem: "won't boot", SerialNumber: "SN-1"},
		{ID: 2, Brand: "Acme", Model: "X2", Problem: "screen cracked", SerialNumber: "N/A"},
	}

	pdf, err := Generate(cases, "TechParts", "MY COMPANY NAME", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateEmptyCaseList(t *testing.T) {
	pdf, err := Generate(nil, "TechParts", "MY COMPANY NAME", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
