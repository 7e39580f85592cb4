package main

import (
	"context"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"

	"ChartPulse/internal/config"
	"ChartPulse/internal/feed"
	"ChartPulse/internal/recorder"
	"ChartPulse/internal/report"
	"ChartPulse/internal/theme"
)

func main() {
	log := logrus.WithField("app", "chartpulse")
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("ChartPulse starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}

	// Resolve palette
	pal := theme.ByName(cfg.Chart.Theme)
	if cfg.ThemeFile != "" {
		p, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			log.WithError(err).Warn("load theme file failed, using bundled palette")
		} else {
			pal = p
		}
	}

	// Init feed
	var src feed.Source
	if cfg.Feed.Source == "binance" {
		src = &feed.Binance{URL: cfg.Feed.URL, Symbol: cfg.Feed.Symbol, Log: log}
	} else {
		src = &feed.Synthetic{}
	}
	log.WithField("source", src.Name()).Info("feed selected")

	// Init recorder
	var rec recorder.Recorder
	if cfg.Recorder.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init reporter
	rep := report.NewReporter(rec, log)
	if err := rep.Register(cfg.Report.StatsCron); err != nil {
		log.WithError(err).Fatal("register stats task")
	}
	rep.Start()

	ctx, cancel := context.WithCancel(context.Background())

	ticks, err := src.Stream(ctx)
	if err != nil {
		log.WithError(err).Fatal("start feed")
	}

	rec.RecordSession(&recorder.SessionEvent{
		EventType: "START", Feed: src.Name(), Symbol: cfg.Feed.Symbol,
	})

	chart := newChartApp(cfg, pal, ticks, rep, log)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("ChartPulse"), app.Size(unit.Dp(960), unit.Dp(540)))
		if err := chart.loop(w); err != nil {
			log.WithError(err).Error("window loop")
		}
		rec.RecordSession(&recorder.SessionEvent{EventType: "STOP", Feed: src.Name()})
		cancel()
		rep.Stop()
		rec.Close()
		log.Info("ChartPulse stopped")
		os.Exit(0)
	}()
	app.Main()
}
