package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mern-eats/sales-api/internal/config"
	"github.com/mern-eats/sales-api/internal/database"
	"github.com/mern-eats/sales-api/internal/services"
	"github.com/mern-eats/sales-api/pkg/logger"
)

const formatJSON = "json"

type reportFlags struct {
	restaurantID string
	ownerID      string
	startDate    string
	endDate      string
	format       string
	out          string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salesctl",
		Short:         "Operator tools for restaurant sales reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReportCmd(openServices))
	return root
}

// openServices wires services against the configured order store
func openServices(ctx context.Context) (*services.Services, func(context.Context) error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.Environment, cfg.LogLevel)

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewServices(store.Repos, cfg), store.Close, nil
}

type servicesOpener func(ctx context.Context) (*services.Services, func(context.Context) error, error)

func newReportCmd(open servicesOpener) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the sales report of a restaurant",
		Long: `Builds the sales performance report of a restaurant on behalf of its owner
and writes it as json, csv, xlsx or pdf to a file or stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			svcs, closeStore, err := open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore(ctx) }()

			out := cmd.OutOrStdout()
			if flags.out != "" && flags.out != "-" {
				f, err := os.Create(flags.out)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return writeReport(ctx, svcs, flags, out)
		},
	}

	cmd.Flags().StringVar(&flags.restaurantID, "restaurant", "", "restaurant id")
	cmd.Flags().StringVar(&flags.ownerID, "owner", "", "user id of the restaurant owner")
	cmd.Flags().StringVar(&flags.startDate, "start", "", "start date (ISO 8601), defaults to end minus the report window")
	cmd.Flags().StringVar(&flags.endDate, "end", "", "end date (ISO 8601), defaults to now")
	cmd.Flags().StringVar(&flags.format, "format", formatJSON, "output format: json, csv, xlsx or pdf")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func writeReport(ctx context.Context, svcs *services.Services, flags reportFlags, w io.Writer) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if _, ok := services.ExportContentType(format); !ok && format != formatJSON {
		return fmt.Errorf("unsupported format %q", flags.format)
	}

	report, err := svcs.SalesReport.Generate(ctx, services.SalesReportQuery{
		RestaurantID: flags.restaurantID,
		RequesterID:  flags.ownerID,
		StartDate:    flags.startDate,
		EndDate:      flags.endDate,
	})
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	data, _, err := svcs.Export.Export(ctx, report, flags.restaurantID, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
