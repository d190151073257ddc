package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"common-utils/core/format"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSizeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Render a byte count with binary or decimal units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			size, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q: %w", args[0], err)
			}
			if size < 0 {
				return fmt.Errorf("invalid byte count %d: must not be negative", size)
			}

			decimal := e.cfg.Format.Decimal
			if cmd.Flags().Changed("decimal") {
				decimal, _ = cmd.Flags().GetBool("decimal")
			}

			e.log.Debug("Formatting size", zap.Int64("size", size), zap.Bool("decimal", decimal))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Size(size, decimal))
			return err
		},
	}
	c.Flags().Bool("decimal", false, "Use 1000-based units (KB, MB, ...) instead of 1024-based")
	return c
}

func newTimeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "time <nanos>",
		Short: "Render a nanosecond Unix timestamp as yyyy-MM-dd HH:mm:ss",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			nanos, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}

			fcfg := e.cfg.Format
			if tz, _ := cmd.Flags().GetString("tz"); tz != "" {
				fcfg.Timezone = tz
			}
			loc, err := fcfg.Location()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.TimeIn(nanos, loc))
			return err
		},
	}
	c.Flags().String("tz", "", "Timezone name (defaults to FORMAT_TIMEZONE)")
	return c
}

func newMoneyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "money <amount>",
		Short: "Render an amount in minor units (cents) as a price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			currency := e.cfg.Format.Currency
			if code, _ := cmd.Flags().GetString("currency"); code != "" {
				currency = code
			}

			out := format.Money(currency, amount)
			if out == format.Unknown {
				e.log.Warn("Unrecognised currency", zap.String("currency", currency))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	c.Flags().String("currency", "", "Currency code (defaults to FORMAT_CURRENCY)")
	return c
}

func newCapitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize <text>...",
		Short: "Upper-case the first character of the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), format.Capitalize(strings.Join(args, " ")))
			return err
		},
	}
}
