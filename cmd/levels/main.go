package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lethallib/go-levels/level"
	"github.com/lethallib/go-levels/rarity"
	"github.com/lethallib/go-levels/root"
	"github.com/lethallib/go-levels/text"
)

const (
	cmd     = "levels"
	version = "0.3.0"

	defaultConfig = "config/rarities.yml"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if err := newApp(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cobra.Command {
	app := &cobra.Command{
		Use:          cmd,
		Short:        cmd + " resolves spawn rarities for moons",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return setupLog(stringFlag(c, "log"))
		},
	}
	app.SetOut(out)
	defineAppFlags(app.PersistentFlags())
	defineCommands(app)
	return app
}

func defineAppFlags(f *pflag.FlagSet) {
	f.String("log", os.Getenv("LEVELS_LOG"), "log file path (default stderr)")
	f.String("config", text.FirstNotEmpty(os.Getenv("LEVELS_CONFIG"), defaultConfig), "rarity config file, relative to $LEVELS_ROOT")
	f.String("rarities", os.Getenv("LEVELS_RARITIES"), "inline rarities, e.g. \"Vanilla:99,Example Moon:5\"; overrides --config")
}

func setupLog(logPath string) error {
	if logPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return errors.Wrapf(err, "mkdir %s failed", logPath)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 10,
		MaxAge:     15,
	})
	return nil
}

func stringFlag(c *cobra.Command, name string) string {
	val, err := c.Flags().GetString(name)
	if err != nil {
		log.Fatalf("bad string value for %s: %s", name, err)
	}
	return val
}

func openStore(c *cobra.Command) (*rarity.Store, error) {
	if inline := stringFlag(c, "rarities"); inline != "" {
		cfg, err := rarity.ParseRarities(inline)
		if err != nil {
			return nil, err
		}
		return rarity.NewStore(cfg), nil
	}
	return rarity.OpenStore(root.New("", "LEVELS_ROOT"), stringFlag(c, "config"))
}

func defineCommands(app *cobra.Command) {
	app.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show " + cmd + " version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), cmd, version)
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "normalize NAME...",
		Short: "print the canonical form of level names",
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			for _, name := range level.NormalizeNames(args) {
				fmt.Fprintln(c.OutOrStdout(), name)
			}
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "resolve NAME...",
		Short: "show the rarity that applies to each level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := openStore(c)
			if err != nil {
				return err
			}
			printResolutions(c.OutOrStdout(), s, args)
			return nil
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "table",
		Short: "show the rarity of every built-in and configured custom level",
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := openStore(c)
			if err != nil {
				return err
			}
			printResolutions(c.OutOrStdout(), s, s.Config().KnownLevels())
			return nil
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "validate the rarity config",
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := openStore(c)
			if err != nil {
				return err
			}
			cfg := s.Config()
			out := c.OutOrStdout()
			for _, l := range cfg.Uncovered() {
				fmt.Fprintf(out, "warning: %s has no rarity\n", l)
			}
			fmt.Fprintf(out, "ok: %d built-in, %d custom rarities, %d custom levels\n",
				len(cfg.Builtin), len(cfg.Custom), len(cfg.Levels))
			return nil
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "watch NAME...",
		Short: "re-resolve levels whenever the rarity config changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := openStore(c)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			printResolutions(out, s, args)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Watch(ctx, func(*rarity.Config) {
				printResolutions(out, s, args)
			})
		},
	})
}

func printResolutions(out io.Writer, s *rarity.Store, names []string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tKEY\tTIER\tRARITY")
	for _, name := range names {
		res := s.Resolve(name)
		weight := "-"
		if res.Found {
			weight = fmt.Sprint(res.Weight)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Name, res.Key, res.Tier, weight)
	}
	w.Flush()
}
