package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecolife/ecolife-api/internal/domain/aqi"
	"github.com/ecolife/ecolife-api/internal/domain/brand"
	"github.com/ecolife/ecolife-api/internal/domain/heatmap"
	"github.com/ecolife/ecolife-api/internal/domain/plant"
	"github.com/ecolife/ecolife-api/internal/domain/solar"
	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAQICommand(t *testing.T) {
	out, err := execute(t, "aqi", "90210")
	require.NoError(t, err)

	var got aqi.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, aqi.Reading{ID: 1, Zip: "90210", Value: 155, Category: aqi.CategoryUnhealthy, Color: aqi.ColorRed}, got)
}

func TestAQICommandShortZip(t *testing.T) {
	_, err := execute(t, "aqi", "123")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestPlantsCommand(t *testing.T) {
	out, err := execute(t, "plants", "--sunlight", "low", "--disease", "RESPIRATORY")
	require.NoError(t, err)

	var got []plant.Plant
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for _, p := range got {
		require.Equal(t, plant.SunlightLow, p.Sunlight)
	}
	require.Equal(t, 1, got[0].ID)
}

func TestPlantsCommandRejectsUnknownEnum(t *testing.T) {
	_, err := execute(t, "plants", "--care", "impossible")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestSolarCommand(t *testing.T) {
	out, err := execute(t, "solar", "25", "--pretty")
	require.NoError(t, err)
	require.Contains(t, out, "\n  ")

	var got solar.Estimate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 13, got.Panels)
	require.True(t, got.WorthIt)
}

func TestSolarCommandText(t *testing.T) {
	out, err := execute(t, "solar", "25", "--text")
	require.NoError(t, err)
	require.Equal(t, solar.Size(25).DisplayText, strings.TrimSpace(out))
}

func TestSolarCommandInvalid(t *testing.T) {
	_, err := execute(t, "solar", "plenty")
	require.ErrorContains(t, err, "not a number")

	_, err = execute(t, "solar", "--", "-3")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestBrandCommand(t *testing.T) {
	out, err := execute(t, "brand", "Coca-Cola")
	require.NoError(t, err)

	var got brand.Score
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, brand.Compute("Coca-Cola"), got)
	require.Equal(t, 60, got.Score)
}

func TestBrandCommandJoinsArgs(t *testing.T) {
	out, err := execute(t, "brand", "The", "Body", "Shop")
	require.NoError(t, err)

	var got brand.Score
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "The Body Shop", got.Name)
}

func TestHeatmapCommand(t *testing.T) {
	out, err := execute(t, "heatmap")
	require.NoError(t, err)

	var got heatmap.Grid
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, heatmap.GridSize, got.Size)
	require.Len(t, got.Cells, heatmap.GridSize*heatmap.GridSize)
}
