package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkeep/storefront/internal/core/domain"
)

func price(v float64) *float64 { return &v }

func TestPrintProducts(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Lamp", Price: price(120), Status: domain.StatusAvailable},
		{ID: "2", Name: "Desk", Price: price(99.5), Status: domain.StatusReserved},
		{ID: "3", Name: "Chair", Price: price(10), Status: "unknown_value"},
		{ID: "4", Name: "Secret", Price: price(1), Status: domain.StatusHidden},
		{ID: "5", Name: "Stool"},
	}

	var buf bytes.Buffer
	require.NoError(t, printProducts(&buf, products, false))
	out := buf.String()

	assert.Contains(t, out, "NT$ 120")
	assert.Contains(t, out, "NT$ 99.5")
	assert.Contains(t, out, domain.LabelAvailable)
	assert.Contains(t, out, domain.LabelReserved)
	assert.Contains(t, out, domain.LabelSold)
	assert.NotContains(t, out, "Secret")
	assert.Regexp(t, `(?m)^5\s+Stool\s+-\s`, out)

	buf.Reset()
	require.NoError(t, printProducts(&buf, products, true))
	assert.Contains(t, buf.String(), "Secret")
	assert.Contains(t, buf.String(), "(hidden)")
}

func TestFactoryReset_RequiresConfirmation(t *testing.T) {
	factoryResetYes = false
	err := factoryResetCmd.RunE(factoryResetCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestReadPasswordLine(t *testing.T) {
	pw, err := readPasswordLine(strings.NewReader("hunter2\n"))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pw)

	pw, err = readPasswordLine(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = readPasswordLine(strings.NewReader("\n"))
	assert.Error(t, err)
}
