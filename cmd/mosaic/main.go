package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/mosaic"
	"github.com/phanxgames/mosaic/internal/config"
	"github.com/phanxgames/mosaic/internal/logging"
	"github.com/phanxgames/mosaic/page"
)

var (
	configFile string
	preset     string
	seed       uint64
	width      int
	height     int
	logLevel   string
	logFile    string
	debug      bool
	palette    string

	showFPS       bool
	background    bool
	scriptFile    string
	screenshotDir string

	outFile string
	frames  int
	fps     int
	warmup  string
	bgSrc   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mosaic",
		Short:         "animated tile-mosaic backgrounds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset configuration")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&width, "width", config.DefaultWidth, "width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "height in pixels")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: "+strings.Join(logging.Levels(), ", "))
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&debug, "debug", false, "log per-frame timings")
	pf.StringVar(&palette, "palette", "", "palette: "+strings.Join(mosaic.PaletteNames(), ", "))

	runCmd := &cobra.Command{
		Use:   "run [variant]",
		Short: "open a window and animate the background",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWindow,
	}
	runCmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	runCmd.Flags().BoolVar(&background, "background", false, "fullscreen, undecorated, click-through window")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "scripted test run (json)")
	runCmd.Flags().StringVar(&screenshotDir, "screenshots", config.DefaultScreenshotDir, "screenshot directory")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [variant]",
		Short: "render one frame to a PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "mosaic.png", "output file")
	snapshotCmd.Flags().StringVar(&warmup, "warmup", "", "animate this long before capturing (e.g. 2s)")

	recordCmd := &cobra.Command{
		Use:   "record [variant]",
		Short: "render an animated PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&outFile, "out", "o", "mosaic.apng", "output file")
	recordCmd.Flags().IntVar(&frames, "frames", config.DefaultRecordFrames, "frames to capture")
	recordCmd.Flags().IntVar(&fps, "rate", config.DefaultRecordFPS, "virtual frames per second")
	recordCmd.Flags().StringVar(&warmup, "warmup", "", "animate this long before capturing (e.g. 2s)")

	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "write the portfolio page shell as HTML",
		Args:  cobra.NoArgs,
		RunE:  runPage,
	}
	pageCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	pageCmd.Flags().StringVar(&bgSrc, "bg-src", "", "use an image as the background instead of a canvas")

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "list variants, palettes and presets",
		Args:  cobra.NoArgs,
		RunE:  listVariants,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "print or save the effective configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}

	rootCmd.AddCommand(runCmd, snapshotCmd, recordCmd, pageCmd, variantsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file and changed flags, in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
		cfg.Colors = nil
	}
	if flags.Changed("fps") {
		cfg.ShowFPS = showFPS
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("screenshots") {
		cfg.ScreenshotDir = screenshotDir
	}
	if flags.Changed("frames") {
		cfg.Record.Frames = frames
	}
	if flags.Changed("rate") {
		cfg.Record.FPS = fps
	}
	if flags.Changed("warmup") {
		d, err := parseDuration(warmup)
		if err != nil {
			return nil, err
		}
		cfg.Record.Warmup = d
	}
	if len(args) > 0 {
		cfg.Variant = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration, configures logging and builds a controller.
func setup(cmd *cobra.Command, args []string) (*config.Config, *mosaic.Controller, zerolog.Logger, func(), error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, zerolog.Nop(), nil, err
	}
	logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, zerolog.Nop(), nil, err
	}
	v, err := cfg.NewVariant()
	if err != nil {
		closeLog()
		return nil, nil, logger, nil, err
	}
	cc := cfg.ControllerConfig(v)
	cc.Logger = &logger
	ctrl, err := mosaic.NewController(cc)
	if err != nil {
		closeLog()
		return nil, nil, logger, nil, err
	}
	logger.Info().
		Str("variant", v.Name()).
		Uint64("seed", cfg.Seed).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("mosaic configured")
	return cfg, ctrl, logger, closeLog, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, ctrl, logger, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	var runner *mosaic.ScriptRunner
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if runner, err = mosaic.LoadScript(data); err != nil {
			return err
		}
	}
	clearColor, _ := cfg.Clear()
	return mosaic.Run(ctrl, mosaic.RunConfig{
		Title:         "mosaic · " + cfg.Variant,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFPS:       cfg.ShowFPS,
		Background:    cfg.Background,
		ClearColor:    clearColor,
		Script:        runner,
		ScreenshotDir: cfg.ScreenshotDir,
		Logger:        &logger,
	})
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, ctrl, logger, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, err := mosaic.Snapshot(ctx, ctrl, cfg.RecordConfig())
	if err != nil {
		return err
	}
	if err := mosaic.SavePNG(outFile, img); err != nil {
		return err
	}
	logger.Info().Str("path", outFile).Msg("snapshot saved")
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, ctrl, logger, closeLog, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	imgs, err := mosaic.Record(ctx, ctrl, cfg.RecordConfig())
	if err != nil {
		return err
	}
	if err := mosaic.SaveAPNG(outFile, imgs); err != nil {
		return err
	}
	logger.Info().Str("path", outFile).Int("frames", len(imgs)).Msg("recording saved")
	return nil
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	src := cfg.Page.Background
	if cmd.Flags().Changed("bg-src") {
		src = bgSrc
	}
	doc := page.Build(cfg.Page.Title, src, page.Props{Profile: cfg.Page.Profile})

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return page.Write(w, doc)
}

func listVariants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME")
	for _, v := range mosaic.Variants() {
		fmt.Fprintf(w, "variant\t%s\n", v)
	}
	for _, p := range mosaic.PaletteNames() {
		fmt.Fprintf(w, "palette\t%s\n", p)
	}
	for _, p := range config.ListPresets() {
		fmt.Fprintf(w, "preset\t%s\n", p)
	}
	return w.Flush()
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "saved", args[0])
		return nil
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
