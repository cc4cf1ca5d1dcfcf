package main

import (
	"context"
	"fmt"

	"contacts/pkg/country"
	"contacts/pkg/logger"
	"contacts/pkg/phone"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// phoneCommand constructs the 'phone' subcommand that parses a free-text
// phone number and prints its decomposed parts.
func phoneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone <number>",
		Short: "Parses a phone number and prints its parts",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			number, err := phone.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not parse phone number", zap.Error(err))
			}

			if s, _ := cmd.Flags().GetString("country"); s != "" {
				c, err := country.From(s)
				if err != nil {
					logger.Fatal(ctx, "could not resolve country", zap.Error(err))
				}
				number.WithCountry(c)
			}

			if s, _ := cmd.Flags().GetString("type"); s != "" {
				t, err := phone.TypeFrom(s)
				if err != nil {
					logger.Fatal(ctx, "could not resolve phone type", zap.Error(err))
				}
				number.WithType(t)
			}

			if s, _ := cmd.Flags().GetString("extension"); s != "" {
				extension, err := phone.NewExtension(s)
				if err != nil {
					logger.Fatal(ctx, "could not parse extension", zap.Error(err))
				}
				if err := number.SetExtension(extension); err != nil {
					logger.Fatal(ctx, "could not set extension", zap.Error(err))
				}
			}

			fmt.Println(number) //nolint: forbidigo
			if number.AreaCode != "" {
				fmt.Println("area code:    ", number.AreaCode) //nolint: forbidigo
			}
			fmt.Println("exchange code:", number.ExchangeCode) //nolint: forbidigo
			fmt.Println("line number:  ", number.LineNumber)   //nolint: forbidigo
			if number.Country.IsSet() {
				fmt.Println("country:      ", number.Country.Name()) //nolint: forbidigo
				fmt.Println("roaming:      ", number.Roaming())      //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("country", "", "Country code or name (e.g., US, Canada)")
	cmd.Flags().String("type", "", "Phone type (cell, landline, satellite, voip)")
	cmd.Flags().String("extension", "", "Extension digits")

	return cmd
}
