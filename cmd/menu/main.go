package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/saffron-menu/internal/catalog"
	"github.com/Lixing-Zhang/saffron-menu/internal/config"
	"github.com/Lixing-Zhang/saffron-menu/internal/currency"
	"github.com/Lixing-Zhang/saffron-menu/internal/scrollsync"
	"github.com/Lixing-Zhang/saffron-menu/internal/tui"
	"github.com/Lixing-Zhang/saffron-menu/pkg/logger"
)

var (
	// Global flags
	catalogFile  string
	logFile      string
	headerOffset int
	noSmooth     bool

	// Print flags
	printCategory string
)

var rootCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse the restaurant menu in the terminal",
	Long: `menu shows the restaurant catalog grouped by category with a
navigation strip that follows the scroll position.

Add items to the cart with "a", remove them with "x" and press "c" to
review the order. Press "?" for all key bindings.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowser,
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the menu as plain text",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Menu catalog YAML file (default: bundled menu)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Session log file (default: MENU_LOG_FILE or menu.log)")
	rootCmd.Flags().IntVar(&headerOffset, "header-offset", 1, "Rows kept above a category heading after a jump")
	rootCmd.Flags().BoolVar(&noSmooth, "no-smooth", false, "Jump between categories without animation")

	printCmd.Flags().StringVar(&printCategory, "category", "", "Only print the category with this id")

	rootCmd.AddCommand(printCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Menu.CatalogFile = catalogFile
	}
	if flags.Changed("log-file") {
		cfg.Menu.LogFile = logFile
	}
	if flags.Changed("header-offset") {
		cfg.Menu.HeaderOffset = headerOffset
	}
	if flags.Changed("no-smooth") {
		cfg.Menu.SmoothScroll = !noSmooth
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runBrowser starts the interactive menu browser
func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	menu, err := catalog.Load(cfg.Menu.CatalogFile)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	var out io.Writer = io.Discard
	if cfg.Menu.LogFile != "" {
		f, err := os.OpenFile(cfg.Menu.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.NewWithWriter(cfg.LogLevel, out).With("session_id", uuid.NewString())
	log.Info("menu browser started",
		"restaurant", menu.Name,
		"categories", len(menu.Categories),
		"items", menu.ItemCount(),
		"smooth_scroll", cfg.Menu.SmoothScroll,
	)

	m := tui.New(menu, tui.Options{
		Scroll: scrollsync.Options{
			HeaderOffset:    cfg.Menu.HeaderOffset,
			BottomExclusion: cfg.Menu.BottomExclusion,
		},
		SmoothScroll: cfg.Menu.SmoothScroll,
		FPS:          60,
		Currency:     currency.NewFormatter(cfg.Menu.CurrencySymbol),
		Logger:       log,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("menu browser failed", "error", err)
		return err
	}

	log.Info("menu browser exited",
		"cart_items", m.Cart().TotalCount(),
		"cart_total", m.Cart().TotalPrice(),
	)
	return nil
}
