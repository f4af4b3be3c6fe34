package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/okshift/internal/adjust"
	"github.com/ironsheep/okshift/internal/stream"
)

// Environment variables read by the command.
const (
	EnvLogLevel = "OKSHIFT_LOG_LEVEL"
	EnvColor    = "OKSHIFT_COLOR"
)

// BuildInfo is the version information set by ldflags.
type BuildInfo struct {
	Name      string
	Version   string
	BuildTime string
	GitCommit string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s\n  Build time: %s\n  Git commit: %s", b.Version, b.BuildTime, b.GitCommit)
}

// NewCommand returns the root command for a tool working in model m.
func NewCommand(m adjust.Model, info BuildInfo) *cobra.Command {
	var (
		noClamp bool
		color   = colorAuto
	)
	if env := os.Getenv(EnvColor); env != "" {
		if err := color.Set(env); err != nil {
			log.Printf("ignoring %s=%q: %v", EnvColor, env, err)
		}
	}

	cmd := &cobra.Command{
		Use:   info.Name + " COMPONENT ADJUSTMENT VALUE",
		Short: fmt.Sprintf("Adjust sRGB hex colors from stdin in %s space", m),
		Long:  longHelp(m),
		Example: fmt.Sprintf("  echo '#336699' | %[1]s l + 0.1\n"+
			"  echo 'ff8800' | %[1]s h = 200\n"+
			"  %[1]s --no-clamp -- l + -0.05 < colors.txt", info.Name),
		Version:       info.String(),
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseArgs(m, args)
			if err != nil {
				return err
			}
			cfg.NoClamp = noClamp

			adjuster, err := adjust.New(cfg)
			if err != nil {
				return err
			}

			debug := debugLogger(cmd.ErrOrStderr())
			if debug != nil {
				debug.Printf("%s v%s (built %s, commit %s)", info.Name, info.Version, info.BuildTime, info.GitCommit)
				debug.Printf("adjustment: %s", cfg)
			}

			var opts []stream.Option
			if profile, fixed := color.profile(); fixed {
				opts = append(opts, stream.WithColor(profile))
			}
			if debug != nil {
				opts = append(opts, stream.WithDebugLog(debug))
			}

			var lines stream.Adjuster = adjuster
			if debug != nil {
				lines = tracer{adjuster: adjuster, log: debug}
			}

			p := stream.New(lines, cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
			if err := p.Run(); err != nil {
				return err
			}

			if debug != nil {
				debug.Printf("processed %d lines", p.Lines())
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.Flags().BoolVar(&noClamp, "no-clamp", false, "fail on out-of-range results instead of clamping them")
	cmd.Flags().Var(&color, "color", "color output lines on a terminal: auto, always or never (env "+EnvColor+")")

	return cmd
}

// parseArgs turns COMPONENT ADJUSTMENT VALUE into a Config.
func parseArgs(m adjust.Model, args []string) (adjust.Config, error) {
	component, err := adjust.ParseComponent(m, args[0])
	if err != nil {
		return adjust.Config{}, &adjust.ConfigError{Field: "component", Reason: err.Error()}
	}

	op, err := adjust.ParseOperation(args[1])
	if err != nil {
		return adjust.Config{}, &adjust.ConfigError{Field: "adjustment", Reason: err.Error()}
	}

	value, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return adjust.Config{}, &adjust.ConfigError{Field: "value", Reason: fmt.Sprintf("%q is not a number", args[2])}
	}

	return adjust.Config{
		Model:     m,
		Component: component,
		Operation: op,
		Value:     value,
	}, nil
}

// debugLogger returns a logger writing to w when debug logging is enabled,
// nil otherwise.
func debugLogger(w io.Writer) *log.Logger {
	if os.Getenv(EnvLogLevel) != "debug" {
		return nil
	}
	return log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile)
}

func longHelp(m adjust.Model) string {
	s := fmt.Sprintf("Reads one sRGB hex color per line (#rrggbb, #rgb, with or without '#'),\n"+
		"adjusts one %s component and writes the result in the same form.\n\nComponents:\n", m)
	for _, c := range m.Components() {
		s += fmt.Sprintf("  %s, %-10s %s\n", c.Short(), c.String(), m.Range(c))
	}
	s += "\nAdjustments:\n  =, set\n  +, increase\n  -, decrease\n\n" +
		"Results outside a component's range are clamped to it unless --no-clamp\n" +
		"is given, in which case the run stops with an error. Hue wraps around."
	return s
}
