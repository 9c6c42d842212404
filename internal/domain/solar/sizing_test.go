package solar

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/ecolife/ecolife-api/pkg/errors"
)

func TestPanelDailyKwh(t *testing.T) {
	require.Equal(t, 2.0, PanelDailyKwh())
}

func TestSizeTwentyFiveKwh(t *testing.T) {
	est := Size(25)

	require.Equal(t, 13, est.Panels)
	require.Equal(t, 6.5, est.SystemSizeKw)
	require.Equal(t, 26.0, est.DailyProductionKwh)
	require.Equal(t, 100, est.EnergyOffsetPercent)
	require.Equal(t, 3.8, est.AnnualCo2ReductionTons)
	require.Equal(t, int64(75920), est.AnnualSavingsInr)
	require.True(t, est.WorthIt)
	require.Equal(t, summaryWorthIt, est.Summary)
	require.InDelta(t, 3796.0, est.Co2ReductionKg, 1e-6)
	require.Equal(t, 19771.0, est.Equivalents.MilesDriven)
	require.Equal(t, 63.0, est.Equivalents.TreeSeedlings)
	require.Equal(t, "13 panels avoid ~3,796 kg CO2 a year, equivalent to driving ~19,771 miles or growing ~63 tree seedlings", est.DisplayText)
}

func TestSizeBelowThresholdStillComputes(t *testing.T) {
	est := Size(4)

	require.False(t, est.WorthIt)
	require.Equal(t, summaryNotWorthIt, est.Summary)
	require.Equal(t, 2, est.Panels)
	require.Equal(t, 1.0, est.SystemSizeKw)
	require.Equal(t, 4.0, est.DailyProductionKwh)
	require.Equal(t, 100, est.EnergyOffsetPercent)
	require.Equal(t, 0.6, est.AnnualCo2ReductionTons)
	require.Equal(t, int64(11680), est.AnnualSavingsInr)
}

func TestSizeThresholdBoundary(t *testing.T) {
	require.False(t, Size(4.999).WorthIt)

	est := Size(5)
	require.True(t, est.WorthIt)
	require.Equal(t, 3, est.Panels)
}

func TestSizeZeroConsumption(t *testing.T) {
	est := Size(0)

	require.False(t, est.WorthIt)
	require.Equal(t, 0, est.Panels)
	require.Equal(t, 0.0, est.SystemSizeKw)
	require.Equal(t, 0.0, est.DailyProductionKwh)
	require.Equal(t, 0, est.EnergyOffsetPercent)
	require.Equal(t, 0.0, est.AnnualCo2ReductionTons)
	require.Equal(t, int64(0), est.AnnualSavingsInr)
	require.Equal(t, "No panels needed for zero consumption", est.DisplayText)
}

func TestSizeOffsetIsClamped(t *testing.T) {
	for _, kwh := range []float64{0.5, 1, 3, 7, 12.3, 99.9} {
		est := Size(kwh)
		require.LessOrEqual(t, est.EnergyOffsetPercent, 100, "kwh %v", kwh)
		require.GreaterOrEqual(t, est.EnergyOffsetPercent, 0, "kwh %v", kwh)
		require.Equal(t, int(math.Ceil(kwh/2)), est.Panels, "kwh %v", kwh)
	}
}

func TestSizeIsIdempotent(t *testing.T) {
	require.Equal(t, Size(17.25), Size(17.25))
}

func TestNumberAcceptsStringsAndNumbers(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"zip":"90210","dailyKwh":"25.5"}`), &req))
	require.Equal(t, Number(25.5), *req.DailyKwh)

	require.NoError(t, json.Unmarshal([]byte(`{"zip":"90210","dailyKwh":12}`), &req))
	require.Equal(t, Number(12), *req.DailyKwh)

	require.Error(t, json.Unmarshal([]byte(`{"dailyKwh":"lots"}`), &req))
	require.Error(t, json.Unmarshal([]byte(`{"dailyKwh":true}`), &req))
}

func TestServiceCalculateValidation(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	_, err := svc.Calculate(ctx, Request{Zip: "90210"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	neg := Number(-1)
	_, err = svc.Calculate(ctx, Request{DailyKwh: &neg})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	nan := Number(math.NaN())
	_, err = svc.Calculate(ctx, Request{DailyKwh: &nan})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	huge := Number(1e20)
	_, err = svc.Calculate(ctx, Request{DailyKwh: &huge})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	zero := Number(0)
	est, err := svc.Calculate(ctx, Request{DailyKwh: &zero})
	require.NoError(t, err)
	require.Equal(t, 0, est.EnergyOffsetPercent)

	kwh := Number(25)
	est, err = svc.Calculate(ctx, Request{Zip: "90210", DailyKwh: &kwh})
	require.NoError(t, err)
	require.Equal(t, 13, est.Panels)
}

func TestSizeAtMaximumStaysInRange(t *testing.T) {
	est := Size(MaxDailyKwh)

	require.Equal(t, 500_000, est.Panels)
	require.Equal(t, 100, est.EnergyOffsetPercent)
	require.Equal(t, int64(2_920_000_000), est.AnnualSavingsInr)
	require.Greater(t, est.AnnualCo2ReductionTons, 0.0)
}

func TestServiceCalculateAcceptsMaximum(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	limit := Number(MaxDailyKwh)
	est, err := svc.Calculate(context.Background(), Request{DailyKwh: &limit})
	require.NoError(t, err)
	require.Equal(t, 500_000, est.Panels)

	over := Number(MaxDailyKwh + 1)
	_, err = svc.Calculate(context.Background(), Request{DailyKwh: &over})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
