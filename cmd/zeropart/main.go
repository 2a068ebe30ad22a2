package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ar90n/zeropart"
	"github.com/ar90n/zeropart/harness"
	"github.com/ar90n/zeropart/multiset"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errChecksFailed = errors.New("checks failed")

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func formatInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}

func partitionAction(c *cli.Context) error {
	xs, err := readInts(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}

	variant := harness.Unstable
	if c.Bool("stable") {
		variant = harness.Stable
	}
	boundary := harness.PartitionFunc(variant)(xs)

	fmt.Fprintln(c.App.Writer, formatInts(xs))
	fmt.Fprintf(c.App.Writer, "boundary: %d\n", boundary)
	return nil
}

func countAction(c *cli.Context) error {
	xs, err := readInts(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}

	counter := multiset.FromSlice(xs)
	values := make([]int64, 0, counter.Len())
	for v := range counter.All() {
		values = append(values, v)
	}
	slices.Sort(values)

	for _, v := range values {
		fmt.Fprintf(c.App.Writer, "%d: %d\n", v, counter.Get(v))
	}
	return nil
}

func loadConfig(c *cli.Context) (harness.Config, error) {
	cfg := harness.DefaultConfig()
	if path := c.String("config"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, errors.Wrap(err, "open config")
		}
		defer file.Close()

		if cfg, err = harness.LoadConfig(file); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("trials") {
		cfg.Trials = c.Uint("trials")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Uint("workers")
	}
	if c.Bool("stable") {
		cfg.Variant = harness.Stable
	}
	return cfg, cfg.Validate()
}

func checkAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := harness.Run(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	for _, f := range report.Failures {
		fmt.Fprintf(c.App.Writer, "trial %d (%s) [%s]: %v\n", f.Trial, f.Shape, formatInts(f.Input), f.Err)
	}
	fmt.Fprintf(c.App.Writer, "%d trials, %d failures\n", report.Trials, len(report.Failures))
	if !report.OK() {
		return errChecksFailed
	}
	return nil
}

func boundaryAction(c *cli.Context) error {
	xs, err := readInts(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}

	boundary, ok := zeropart.Boundary(xs)
	fmt.Fprintf(c.App.Writer, "boundary: %d\npartitioned: %t\n", boundary, ok)
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "zeropart",
		HelpName: "zeropart",
		Usage:    "move zeros to the front of integer sequences",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "development logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "partition",
				Usage:     "partition integers read from args or stdin",
				UsageText: "zeropart partition [--stable] [--] [ints...]",
				Action:    partitionAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stable",
						Usage: "keep the order of non-zero elements",
					},
				},
			},
			{
				Name:      "count",
				Usage:     "count occurrences of each value",
				UsageText: "zeropart count [--] [ints...]",
				Action:    countAction,
			},
			{
				Name:      "boundary",
				Usage:     "report the zero prefix of a sequence",
				UsageText: "zeropart boundary [--] [ints...]",
				Action:    boundaryAction,
			},
			{
				Name:      "check",
				Usage:     "run randomized partition checks",
				UsageText: "zeropart check [command options]",
				Action:    checkAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file",
					},
					&cli.UintFlag{
						Name:  "trials",
						Value: 1000,
						Usage: "number of trials",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "random seed",
					},
					&cli.UintFlag{
						Name:  "workers",
						Usage: "concurrent trials, 0 for one per CPU",
					},
					&cli.BoolFlag{
						Name:  "stable",
						Usage: "check the stable variant",
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
