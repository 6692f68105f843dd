package main

import (
	"context"
	"time"

	"github.com/TrevorS/fcm"
	"github.com/TrevorS/fcm/internal/dataset"
	"github.com/TrevorS/fcm/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClusterCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster <file>",
		Short: "Sweep cluster counts and report the best fuzzy partition",
		Long: `Reads one point per line (comma-separated real numbers, no header),
fits Fuzzy C-Means for every cluster count in [--min-clusters, --max-clusters]
and reports the count with the lowest partition entropy, its centroids and cost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCluster(cmd, v, args[0])
		},
	}

	def := fcm.DefaultConfig()
	f := cmd.Flags()
	f.Float64("fuzziness", def.Fuzziness, "fuzziness exponent m (> 1)")
	f.Int("max-iterations", def.MaxIterations, "update cycles per cluster count")
	f.Float64("threshold", def.Threshold, "largest centroid shift counted as converged")
	f.Int("min-clusters", def.MinClusters, "smallest cluster count to try")
	f.Int("max-clusters", def.MaxClusters, "largest cluster count to try")
	f.String("init", string(def.Init), "centroid initialization: unit or bounds")
	f.Int64("seed", 0, "random seed (default: time-based)")
	f.Int("workers", 0, "goroutines to use (0 = number of CPUs)")
	f.Duration("timeout", 0, "abort the sweep after this long (0 = no limit)")
	f.String("format", string(report.FormatText), "output format: text or json")
	f.Bool("membership", false, "include the membership matrix in text output")
	mustBind(v.BindPFlags(f))

	return cmd
}

func runCluster(cmd *cobra.Command, v *viper.Viper, path string) error {
	logger, err := newLogger(cmd, v.GetString("log-level"))
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	data, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug().Str("file", path).Int("points", len(data)).Int("dims", len(data[0])).Msg("data loaded")

	cfg := fcm.DefaultConfig()
	cfg.Fuzziness = v.GetFloat64("fuzziness")
	cfg.MaxIterations = v.GetInt("max-iterations")
	cfg.Threshold = v.GetFloat64("threshold")
	cfg.MinClusters = v.GetInt("min-clusters")
	cfg.MaxClusters = v.GetInt("max-clusters")
	cfg.Init = fcm.InitMethod(v.GetString("init"))
	cfg.Workers = v.GetInt("workers")
	cfg.Logger = &logger
	if v.IsSet("seed") {
		cfg.Seed = v.GetInt64("seed")
	} else {
		cfg.Seed = time.Now().UnixNano()
		logger.Debug().Int64("seed", cfg.Seed).Msg("using time-based seed")
	}

	ctx := cmd.Context()
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := fcm.Cluster(ctx, data, cfg)
	if err != nil {
		return err
	}
	if !res.Converged() {
		logger.Warn().Int("clusters", res.Clusters).Int("iterations", res.Iterations).
			Msg("selected run did not converge within the iteration budget")
	}

	return report.Write(cmd.OutOrStdout(), res, report.Options{
		Format:     format,
		Membership: v.GetBool("membership"),
	})
}
