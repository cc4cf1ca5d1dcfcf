package main

import (
	"context"
	"fmt"
	"strconv"

	"contacts/internal/config"
	"contacts/pkg/geo"
	"contacts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCommand constructs the 'convert' subcommand that converts a length
// measurement between units. The target unit defaults to the configured one.
func convertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value> <from> [<to>]",
		Short: "Converts a length between units (ft, yd, m, km, mi)",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			measurement, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				logger.Fatal(ctx, "could not parse measurement", zap.Error(err))
			}

			from, err := geo.LengthUnitFrom(args[1])
			if err != nil {
				logger.Fatal(ctx, "could not resolve source unit", zap.Error(err))
			}

			target := cfg.Units.DefaultLength
			if len(args) == 3 {
				target = args[2]
			}
			to, err := geo.LengthUnitFrom(target)
			if err != nil {
				logger.Fatal(ctx, "could not resolve target unit", zap.Error(err))
			}

			distance, err := geo.NewDistance(measurement, from)
			if err != nil {
				logger.Fatal(ctx, "could not create distance", zap.Error(err))
			}

			fmt.Println(distance.To(to)) //nolint: forbidigo
		},
	}

	return cmd
}
