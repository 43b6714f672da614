package main

import (
	"context"
	"delivery-time-service/internal/app"
	"delivery-time-service/internal/config"
	"delivery-time-service/internal/domain"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	input := domain.DefaultOrderInput()
	var weather, traffic, timeOfDay, vehicle string
	var modelPath, schemaPath string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a delivery time from order details",
		Long: `predict loads the model and feature columns, encodes one order
and prints the predicted delivery time in minutes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if input.Weather, err = domain.ParseWeather(weather); err != nil {
				return err
			}
			if input.TrafficLevel, err = domain.ParseTrafficLevel(traffic); err != nil {
				return err
			}
			if input.TimeOfDay, err = domain.ParseTimeOfDay(timeOfDay); err != nil {
				return err
			}
			if input.VehicleType, err = domain.ParseVehicleType(vehicle); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("model") {
				cfg.ModelPath = modelPath
			}
			if cmd.Flags().Changed("columns") {
				cfg.SchemaPath = schemaPath
			}
			// One-shot runs never touch the cache or the prediction log.
			cfg.DatabaseURL = ""
			cfg.RedisURL = ""

			log.SetOutput(io.Discard)

			a, err := app.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			est, err := a.Estimator.Estimate(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "Predicted Delivery Time: %.2f minutes\n", est.Minutes)
			return err
		},
	}

	f := cmd.Flags()
	f.Float64Var(&input.DistanceKm, "distance", domain.DefaultDistanceKm, "distance in km")
	f.IntVar(&input.PreparationTimeMin, "prep-time", domain.DefaultPreparationTimeMin, "preparation time in minutes")
	f.IntVar(&input.CourierExperienceYrs, "experience", domain.DefaultCourierExperienceYrs, "courier experience in years")
	f.StringVar(&weather, "weather", string(domain.WeatherSunny), "Sunny, Rainy, Foggy, Snowy or Windy")
	f.StringVar(&traffic, "traffic", string(domain.TrafficLow), "Low, Medium or High")
	f.StringVar(&timeOfDay, "time-of-day", string(domain.TimeMorning), "Morning, Afternoon, Evening or Night")
	f.StringVar(&vehicle, "vehicle", string(domain.VehicleBike), "Bike, Car, Van or Scooter")
	f.StringVar(&modelPath, "model", "", "model artifact (overrides MODEL_PATH)")
	f.StringVar(&schemaPath, "columns", "", "feature column list (overrides SCHEMA_PATH)")

	cmd.SetContext(context.Background())
	return cmd
}
