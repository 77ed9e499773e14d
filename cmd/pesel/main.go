// Command pesel validates and generates PESEL numbers from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/pesel"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "pesel",
		Short:         "Validate and generate PESEL numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(parseCmd(), generateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <number>",
		Short: "Validate an 11-digit number and print its decoded fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer func() { _ = log.Sync() }()

			p, err := pesel.Parse(strings.TrimSpace(args[0]))
			if err != nil {
				log.Debug("parse rejected", zap.String("input", args[0]), zap.Error(err))
				return err
			}
			log.Debug("parse accepted", zap.String("pesel", p.String()))
			fmt.Printf("PESEL: %s\ndate of birth: %s\nsex: %s\n", p, p.BirthDateString(), p.Sex())
			return nil
		},
	}
}

func generateCmd() *cobra.Command {
	var (
		year    int
		month   int
		day     int
		sexName string
		serial  int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a valid number for a birth date and sex",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer func() { _ = log.Sync() }()

			var sex pesel.Sex
			switch strings.ToLower(sexName) {
			case "male", "m":
				sex = pesel.Male
			case "female", "f":
				sex = pesel.Female
			default:
				return fmt.Errorf("unknown sex %q (want male or female)", sexName)
			}

			var opts pesel.Options
			if cmd.Flags().Changed("serial") {
				opts.Serial = pesel.FixedSerial(serial)
			}
			p, err := pesel.NewGenerator(opts).Generate(year, month, day, sex)
			if err != nil {
				log.Debug("generate rejected",
					zap.Int("year", year), zap.Int("month", month), zap.Int("day", day),
					zap.Error(err))
				return err
			}
			log.Debug("generated", zap.String("pesel", p.String()))
			fmt.Println(p)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "birth year (1800-2299)")
	cmd.Flags().IntVar(&month, "month", 0, "birth month (1-12)")
	cmd.Flags().IntVar(&day, "day", 0, "birth day")
	cmd.Flags().StringVar(&sexName, "sex", "", "male or female")
	cmd.Flags().IntVar(&serial, "serial", 0, "pin the four filler digits (0-9999)")
	for _, f := range []string{"year", "month", "day", "sex"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
