package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	httpapi "github.com/tbourn/platform-dashboard/internal/http"
	"github.com/tbourn/platform-dashboard/internal/repo"
)

type exportFlags struct {
	out            string
	os             []string
	minSpeed       float64
	minAccuracy    float64
	minMaintenance float64

	users     int
	storageGB int
	features  int
	period    string
}

func (f exportFlags) criteria() analytics.Criteria {
	return analytics.Criteria{
		OS:             analytics.ParseOSSelection(f.os),
		MinSpeed:       f.minSpeed,
		MinAccuracy:    f.minAccuracy,
		MinMaintenance: f.minMaintenance,
	}
}

var createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeOutput runs write against stdout, or against the file at path unless
// path is blank or "-". A failed close is reported when write succeeded.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	file, err := createOutput(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func newExportCommand(a *app) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:       "export comparison|features|cost",
		Short:     "Write a dashboard view as CSV",
		ValidArgs: []string{"comparison", "features", "cost"},
		Args:      cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), f.out, func(w io.Writer) error {
				return a.export(cmd, args[0], f, w)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "-", "output file (- for stdout)")
	fl.StringSliceVar(&f.os, "os", nil, "operating systems to keep (repeat or comma-separate)")
	fl.Float64Var(&f.minSpeed, "min-speed", 0, "minimum speed score")
	fl.Float64Var(&f.minAccuracy, "min-accuracy", 0, "minimum accuracy score")
	fl.Float64Var(&f.minMaintenance, "min-maintenance", 0, "minimum maintenance score")
	fl.IntVar(&f.users, "users", 5, "cost: number of users")
	fl.IntVar(&f.storageGB, "storage-gb", 10, "cost: storage in GB")
	fl.IntVar(&f.features, "features", 2, "cost: additional features")
	fl.StringVar(&f.period, "period", "Monthly", "cost: Monthly or Annually")
	return cmd
}

func (a *app) export(cmd *cobra.Command, view string, f exportFlags, w io.Writer) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close(db) }()

	ctx := cmd.Context()
	dash := httpapi.NewServices(db, a.cfg).Dashboard
	crit := f.criteria()

	switch view {
	case "comparison":
		ps, err := dash.Comparison(ctx, crit)
		if err != nil {
			return err
		}
		return analytics.ExportComparisonCSV(w, ps)
	case "features":
		m, err := dash.FeatureMatrix(ctx, crit)
		if err != nil {
			return err
		}
		return analytics.ExportFeatureMatrixCSV(w, m)
	case "cost":
		period, err := analytics.ParsePeriod(f.period)
		if err != nil {
			return err
		}
		rep, err := dash.Costs(ctx, crit, analytics.CostInput{
			Users:     f.users,
			StorageGB: f.storageGB,
			Features:  f.features,
			Period:    period,
		})
		if err != nil {
			return err
		}
		if len(rep.Excluded) > 0 {
			a.log.Info().Strs("excluded", rep.Excluded).Msg("platforms without a published price")
		}
		return analytics.ExportCostCSV(w, rep)
	}
	return fmt.Errorf("unknown view %q", view)
}
