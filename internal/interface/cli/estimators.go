package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecolife/ecolife-api/internal/domain/aqi"
	"github.com/ecolife/ecolife-api/internal/domain/brand"
	"github.com/ecolife/ecolife-api/internal/domain/heatmap"
	"github.com/ecolife/ecolife-api/internal/domain/plant"
	"github.com/ecolife/ecolife-api/internal/domain/solar"
)

func newAQICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aqi <zip>",
		Short: "Estimate the air quality index for a zip code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := aqi.NewService(commandLogger(cmd))
			reading, err := svc.Estimate(cmd.Context(), aqi.Request{Zip: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, reading)
		},
	}
}

func newPlantsCmd() *cobra.Command {
	var req plant.Request
	cmd := &cobra.Command{
		Use:   "plants",
		Short: "Recommend air-purifying plants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := plant.NewService(plant.DefaultCatalog(), commandLogger(cmd))
			plants, err := svc.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, plants)
		},
	}

	cmd.Flags().StringVar(&req.Weather, "weather", string(plant.WeatherModerate), "local weather (hot, moderate, cold)")
	cmd.Flags().StringVar(&req.Zip, "zip", "", "zip code, informational only")
	cmd.Flags().StringVar(&req.Sunlight, "sunlight", "", "sunlight filter (low, moderate, high)")
	cmd.Flags().StringVar(&req.Watering, "watering", "", "watering filter (rare, moderate, frequent)")
	cmd.Flags().StringVar(&req.CareIntensity, "care", "", "care intensity filter (easy, moderate, hard)")
	cmd.Flags().StringVar(&req.Disease, "disease", "", "health concern to match against tags and medicinal value")

	return cmd
}

func newSolarCmd() *cobra.Command {
	var (
		zip      string
		textOnly bool
	)
	cmd := &cobra.Command{
		Use:   "solar <dailyKwh>",
		Short: "Size a rooftop solar system for a daily consumption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kwh, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("dailyKwh %q is not a number", args[0])
			}
			n := solar.Number(kwh)
			svc := solar.NewService(commandLogger(cmd))
			est, err := svc.Calculate(cmd.Context(), solar.Request{Zip: zip, DailyKwh: &n})
			if err != nil {
				return err
			}
			if textOnly {
				cmd.Println(est.DisplayText)
				return nil
			}
			return printJSON(cmd, est)
		},
	}

	cmd.Flags().StringVar(&zip, "zip", "", "zip code, informational only")
	cmd.Flags().BoolVar(&textOnly, "text", false, "print only the human readable summary")

	return cmd
}

func newBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brand <name>",
		Short: "Score a brand's sustainability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("brand name cannot be blank")
			}
			return printJSON(cmd, brand.Compute(name))
		},
	}
}

func newHeatmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Print the pollution heat grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, heatmap.Generate())
		},
	}
}
