package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Masterminds/semver/v3"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kemilad/campusdash/internal/config"
	"github.com/kemilad/campusdash/internal/content"
	"github.com/kemilad/campusdash/internal/logging"
	"github.com/kemilad/campusdash/internal/nav"
	"github.com/kemilad/campusdash/internal/tui"
	"github.com/kemilad/campusdash/internal/ui"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgPath, start string

	root := &cobra.Command{
		Use:   "campusdash",
		Short: "Student dashboard — in your terminal",
		Long: `  🎓 campusdash — your courses at a glance

  Examples:
    campusdash                     open the dashboard
    campusdash --start calendar    open on the calendar
    campusdash serve               open the dashboard in a browser
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, false)
			if err != nil {
				return err
			}
			return runTUI(cfg, start)
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "f", "", "config file (default: ./"+config.FileName+")")
	root.Flags().StringVarP(&start, "start", "s", "", "section to open: home, courses, calendar, profile")
	root.SilenceUsage = true

	root.AddCommand(serveCmd(&cfgPath), navCmd(), versionCmd())
	return root
}

func loadConfig(path string, toStderr bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.Log, toStderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func dashboardContent(cfg *config.Config) content.Dashboard {
	data := content.Default()
	if cfg.Student != "" {
		data.Student.Name = cfg.Student
	}
	return data
}

func runTUI(cfg *config.Config, start string) error {
	tcfg := tui.Config{Content: dashboardContent(cfg)}
	if start != "" {
		d, err := nav.ParseDestination(start)
		if err != nil {
			return err
		}
		tcfg.Start = &d
	}
	p := tea.NewProgram(tui.NewModel(tcfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// serve command
// ─────────────────────────────────────────────────────────────────────────────

func serveCmd(cfgPath *string) *cobra.Command {
	var addr string
	var noBrowser bool
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the dashboard to a browser",
		Example: "  campusdash serve\n  campusdash serve --addr 127.0.0.1:8080 --no-browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath, true)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Web.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := ui.NewServer(dashboardContent(cfg))
			return srv.Serve(ctx, ui.Options{
				Addr:        addr,
				OpenBrowser: !noBrowser,
				Ready: func(url string) {
					fmt.Printf("\n  🎓 campusdash dashboard\n\n")
					fmt.Printf("  URL  : %s\n", url)
					fmt.Printf("  Stop : Ctrl+C\n\n")
				},
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: web.addr from config)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open a browser")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// nav / version commands
// ─────────────────────────────────────────────────────────────────────────────

func navCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Inspect sidebar sections",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sidebar sections",
		Run: func(cmd *cobra.Command, args []string) {
			for i, d := range nav.Destinations() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d  %s  %-9s %s\n", i+1, d.Icon(), d, d.Label())
			}
		},
	})
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print campusdash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "  campusdash %s\n", displayVersion(version))
		},
	}
}

// displayVersion normalizes release tags to "vX.Y.Z"; anything that is not
// semver (local builds) is printed as-is.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
