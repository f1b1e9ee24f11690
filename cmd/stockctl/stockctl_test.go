package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "stockctl-test-secret")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScan_SitioVacio(t *testing.T) {
	out, err := run(t, "scan", "--site", "hotel-centro")
	require.NoError(t, err)

	var res dto.AlertScanResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "hotel-centro", res.SiteID)
	assert.Equal(t, 0, res.Scanned)
	assert.Empty(t, res.Alerts)
}

func TestScan_RequiereSitio(t *testing.T) {
	_, err := run(t, "scan")
	assert.Error(t, err)
}

func TestReplenish_SitioVacio(t *testing.T) {
	out, err := run(t, "replenish", "--site", "hotel-centro", "--auto-reorder")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 0`)
}

func TestToken_EsValidoParaLaAPI(t *testing.T) {
	out, err := run(t, "token", "--site", "hotel-playa", "--role", "almacen", "--user", "u-1")
	require.NoError(t, err)

	userID, siteID, role, err := jwt.Parse("stockctl-test-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "hotel-playa", siteID)
	assert.Equal(t, "almacen", role)
}
