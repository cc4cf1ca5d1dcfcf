package main

import (
	"context"
	"fmt"
	"strings"

	"contacts/pkg/address"
	"contacts/pkg/country"
	"contacts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addressCommand constructs the 'address' subcommand that parses a street
// line and, when city and postal code flags are given, assembles the full
// address through the country registry.
func addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address <street line>",
		Short: "Parses a street line, optionally assembling a full address",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			street, err := address.ParseStreet(strings.Join(args, " "))
			if err != nil {
				logger.Fatal(ctx, "could not parse street", zap.Error(err))
			}

			cityName, _ := cmd.Flags().GetString("city")
			postalNumber, _ := cmd.Flags().GetString("postal-code")
			if cityName == "" && postalNumber == "" {
				fmt.Println(street)                      //nolint: forbidigo
				fmt.Println("number:   ", street.Number) //nolint: forbidigo
				if street.Direction != "" {
					fmt.Println("direction:", street.Direction.Name()) //nolint: forbidigo
				}
				fmt.Println("name:     ", street.Name) //nolint: forbidigo
				if street.Type != "" {
					fmt.Println("type:     ", street.Type.Name()) //nolint: forbidigo
				}

				return
			}

			builder := address.NewBuilder().WithStreet(street)

			if cityName != "" {
				city, err := address.NewCity(cityName)
				if err != nil {
					logger.Fatal(ctx, "could not create city", zap.Error(err))
				}
				builder.WithCity(city)
			}

			if postalNumber != "" {
				postalCode, err := address.NewPostalCode(postalNumber)
				if err != nil {
					logger.Fatal(ctx, "could not create postal code", zap.Error(err))
				}
				builder.WithPostalCode(postalCode)
			}

			if s, _ := cmd.Flags().GetString("country"); s != "" {
				c, err := country.From(s)
				if err != nil {
					logger.Fatal(ctx, "could not resolve country", zap.Error(err))
				}
				builder.WithCountry(c)
			}

			if s, _ := cmd.Flags().GetString("unit"); s != "" {
				unit, err := address.NewUnit(s)
				if err != nil {
					logger.Fatal(ctx, "could not create unit", zap.Error(err))
				}
				builder.WithUnit(unit)
			}

			if s, _ := cmd.Flags().GetString("state"); s != "" {
				builder.WithState(s)
			}

			built, err := builder.Build()
			if err != nil {
				logger.Fatal(ctx, "could not build address", zap.Error(err))
			}

			fmt.Println(built) //nolint: forbidigo
		},
	}

	cmd.Flags().String("city", "", "City name")
	cmd.Flags().String("postal-code", "", "Postal code")
	cmd.Flags().String("country", "", "Country code or name (defaults to the local country)")
	cmd.Flags().String("state", "", "State abbreviation or name (United States)")
	cmd.Flags().String("unit", "", "Unit number")

	return cmd
}
