package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newWeatherCmd creates the weather command, which looks up the observation
// from the station nearest to a coordinate.
func newWeatherCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Look up the weather observation nearest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			backend, err := newBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			obs, err := newVedurClient(backend, cfg).ClosestObservation(ctx, lat, lon)
			if err != nil {
				return err
			}
			printField("station", obs.StationName)
			printField("wind", fmt.Sprintf("%.1f m/s", obs.WindSpeed))
			printField("temperature", fmt.Sprintf("%.1f °C", obs.Temperature))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

// newCameraCmd creates the camera command, which finds the traffic camera
// nearest to a coordinate and optionally downloads its current frame.
func newCameraCmd() *cobra.Command {
	var (
		lat, lon float64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Find the traffic camera nearest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			backend, err := newBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			client := newVegagerdinClient(backend, cfg)
			cam, err := client.ClosestCamera(ctx, lat, lon)
			if err != nil {
				return err
			}
			printField("camera", cam.Name)
			printField("position", fmt.Sprintf("%.5f, %.5f", cam.Latitude, cam.Longitude))
			printField("image", styleLink.Render(cam.ImageURL))

			if output != "" {
				img, err := client.FetchImage(ctx, cam)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, img, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("Saved camera frame to %s", output)
				logger.Debugf("saved camera frame to %s", output)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringVarP(&output, "output", "o", "", "download the current frame to this file")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
