package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/provlabs/offers/curve"
	"github.com/provlabs/offers/types"
)

const (
	flagStart     = "start"
	flagBaseTime  = "base-time"
	flagBasePrice = "base-price"
	flagAPR       = "apr"
	flagStep      = "step"
	flagAt        = "at"
)

func parseUint(name, arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return v, nil
}

func apyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apy [apr]",
		Short: "Convert an APR (1000000 = 100 percent) into its daily compounded APY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			apr, err := parseUint("apr", args[0])
			if err != nil {
				return err
			}
			apy, err := curve.APYFromAPR(apr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "apr: %d\napy: %d\n", apr, apy)

			continuous, err := curve.ContinuousAPY(apr)
			if err != nil {
				logger.Warn("continuous apy unavailable", "apr", apr, "err", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "continuous_apy: %s\n", continuous)
			return nil
		},
	}
}

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Compute the step price of a vector at a point in time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := loggerFromCmd(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			var v types.Vector
			if v.StartTime, err = flags.GetInt64(flagStart); err != nil {
				return err
			}
			if v.BaseTime, err = flags.GetInt64(flagBaseTime); err != nil {
				return err
			}
			if v.BasePrice, err = flags.GetUint64(flagBasePrice); err != nil {
				return err
			}
			if v.APR, err = flags.GetUint64(flagAPR); err != nil {
				return err
			}
			if v.PriceFixDuration, err = flags.GetInt64(flagStep); err != nil {
				return err
			}
			at, err := flags.GetInt64(flagAt)
			if err != nil {
				return err
			}
			if at == 0 {
				at = time.Now().Unix()
			}
			if v.BaseTime == 0 {
				v.BaseTime = v.StartTime
			}
			if err := v.ValidateParams(); err != nil {
				return err
			}
			if at < v.StartTime {
				logger.Info("vector has not started yet", "start", v.StartTime, "at", at)
			}

			price, err := curve.CalculateStepPriceAt(v, at)
			if err != nil {
				return err
			}
			next, err := curve.NextPriceChangeTime(v, at)
			if err != nil {
				return err
			}
			logger.Debug("priced vector", "vector", v.String(), "at", at)
			fmt.Fprintf(cmd.OutOrStdout(), "price: %d\nnext_price_change_time: %d\n", price, next)
			return nil
		},
	}

	cmd.Flags().Int64(flagStart, 0, "unix time the vector becomes active")
	cmd.Flags().Int64(flagBaseTime, 0, "unix time the price is anchored at (defaults to --start)")
	cmd.Flags().Uint64(flagBasePrice, 0, "anchor price with 9 implied decimals")
	cmd.Flags().Uint64(flagAPR, 0, "annual rate, 1000000 = 100 percent")
	cmd.Flags().Int64(flagStep, 86_400, "compounding step in seconds")
	cmd.Flags().Int64(flagAt, 0, "unix time to price at (defaults to now)")
	_ = cmd.MarkFlagRequired(flagStart)
	_ = cmd.MarkFlagRequired(flagBasePrice)
	return cmd
}

func tvlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tvl [supply] [price]",
		Short: "Value a circulating supply at a price with 9 implied decimals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			supply, err := parseUint("supply", args[0])
			if err != nil {
				return err
			}
			price, err := parseUint("price", args[1])
			if err != nil {
				return err
			}
			tvl, err := curve.TVL(supply, price)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tvl: %d\n", tvl)
			return nil
		},
	}
}

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [amount-in] [fee-basis-points] [price]",
		Short: "Quote the token out received for an amount of token in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := parseUint("amount in", args[0])
			if err != nil {
				return err
			}
			fee, err := parseUint("fee basis points", args[1])
			if err != nil {
				return err
			}
			price, err := parseUint("price", args[2])
			if err != nil {
				return err
			}
			feeAmt, out, err := curve.TokenOutForTokenIn(amountIn, fee, price)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fee: %d\namount_out: %d\n", feeAmt, out)
			return nil
		},
	}
}
