package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joripage/bonddesk-dev/config"
	"github.com/joripage/bonddesk-dev/pkg/algoexec"
	"github.com/joripage/bonddesk-dev/pkg/algostream"
	"github.com/joripage/bonddesk-dev/pkg/booking"
	"github.com/joripage/bonddesk-dev/pkg/execution"
	"github.com/joripage/bonddesk-dev/pkg/feed"
	"github.com/joripage/bonddesk-dev/pkg/gui"
	"github.com/joripage/bonddesk-dev/pkg/histdata"
	"github.com/joripage/bonddesk-dev/pkg/inquiry"
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/logging"
	"github.com/joripage/bonddesk-dev/pkg/marketdata"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/policy"
	"github.com/joripage/bonddesk-dev/pkg/position"
	"github.com/joripage/bonddesk-dev/pkg/pricing"
	"github.com/joripage/bonddesk-dev/pkg/risk"
	"github.com/joripage/bonddesk-dev/pkg/streaming"
)

func main() {
	configPath := flag.String("config", "./config/bonddesk.yaml", "config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.Init(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithRunID(ctx)
	log := logging.For(ctx).With("service", cfg.ServiceName)

	if err := run(ctx, cfg); err != nil {
		log.Fatalw("replay failed", "error", err)
	}
	log.Info("replay complete")
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	log := logging.For(ctx)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	outPath := func(name string) string {
		return filepath.Join(cfg.OutputDir, name)
	}

	// core services
	pricingSvc := pricing.NewService()
	algoStreamSvc := algostream.NewService(policy.NewCounter(),
		cfg.Streaming.EvenVisibleQty, cfg.Streaming.OddVisibleQty)
	streamingSvc := streaming.NewService()
	marketDataSvc := marketdata.NewService()
	algoExecSvc := algoexec.NewService(policy.NewCounter())
	executionSvc := execution.NewService()
	bookingSvc := booking.NewService()
	positionSvc := position.NewService()
	riskSvc := risk.NewService()
	inquirySvc := inquiry.NewService()

	// capture writers
	priceWriter, err := feed.NewPriceWriter(outPath("gui.txt"), nil)
	if err != nil {
		return err
	}
	defer priceWriter.Close()
	streamingWriter, err := feed.NewStreamingWriter(outPath("streaming.txt"), nil)
	if err != nil {
		return err
	}
	defer streamingWriter.Close()
	executionWriter, err := feed.NewExecutionWriter(outPath("executions.txt"), nil)
	if err != nil {
		return err
	}
	defer executionWriter.Close()
	positionWriter, err := feed.NewPositionWriter(outPath("positions.txt"), nil)
	if err != nil {
		return err
	}
	defer positionWriter.Close()
	riskWriter, err := feed.NewRiskWriter(outPath("risk.txt"), riskSvc, nil)
	if err != nil {
		return err
	}
	defer riskWriter.Close()
	inquiryWriter, err := feed.NewInquiryWriter(outPath("allinquiries.txt"), nil)
	if err != nil {
		return err
	}
	defer inquiryWriter.Close()

	guiSvc := gui.NewService(priceWriter)

	// capture taps
	streamingCapture := histdata.NewService("histdata.streaming",
		func(p model.PriceStream) string { return p.Product.CUSIP },
		func(key string) model.PriceStream { return model.PriceStream{Product: model.Bond{CUSIP: key}} },
		streamingWriter)
	executionCapture := histdata.NewService("histdata.execution",
		func(o model.ExecutionOrder) string { return o.OrderID },
		func(key string) model.ExecutionOrder { return model.ExecutionOrder{OrderID: key} },
		executionWriter)
	positionCapture := histdata.NewService("histdata.position",
		func(p *model.Position) string { return p.Product.CUSIP },
		func(key string) *model.Position { return model.NewPosition(model.Bond{CUSIP: key}) },
		positionWriter)
	riskCapture := histdata.NewService("histdata.risk",
		func(p *model.PV01) string { return p.Product.CUSIP },
		func(key string) *model.PV01 { return &model.PV01{Product: model.Bond{CUSIP: key}} },
		riskWriter)
	inquiryCapture := histdata.NewService("histdata.inquiry",
		func(i model.Inquiry) string { return i.InquiryID },
		func(key string) model.Inquiry { return model.Inquiry{InquiryID: key} },
		inquiryWriter)

	// event journal across every service
	journal := keyed.NewJournal()
	pricingSvc.SetJournal(journal)
	algoStreamSvc.SetJournal(journal)
	streamingSvc.SetJournal(journal)
	guiSvc.SetJournal(journal)
	marketDataSvc.SetJournal(journal)
	algoExecSvc.SetJournal(journal)
	executionSvc.SetJournal(journal)
	bookingSvc.SetJournal(journal)
	positionSvc.SetJournal(journal)
	riskSvc.SetJournal(journal)
	inquirySvc.SetJournal(journal)

	// listener wiring; registration order is the dispatch order
	pricingSvc.AddListener(gui.NewThrottle(guiSvc, cfg.ThrottleInterval(), cfg.GUI.MaxUpdates, nil))
	pricingSvc.AddListener(algostream.NewPriceListener(algoStreamSvc))
	algoStreamSvc.AddListener(streaming.NewAlgoListener(streamingSvc))
	streamingSvc.AddListener(histdata.NewListener(streamingCapture))

	marketDataSvc.AddListener(algoexec.NewBookListener(algoExecSvc))
	algoExecSvc.AddListener(execution.NewAlgoListener(executionSvc))
	executionSvc.AddListener(booking.NewExecutionListener(bookingSvc))
	executionSvc.AddListener(histdata.NewListener(executionCapture))
	bookingSvc.AddListener(position.NewTradeListener(positionSvc))
	positionSvc.AddListener(risk.NewPositionListener(riskSvc))
	positionSvc.AddListener(histdata.NewListener(positionCapture))
	riskSvc.AddListener(histdata.NewListener(riskCapture))

	inquirySvc.SetTransport(inquiry.NewLoopbackTransport(inquirySvc))
	inquirySvc.AddListener(histdata.NewListener(inquiryCapture))
	inquirySvc.AddListener(inquiry.NewAutoQuoter(inquirySvc))

	// replay the feeds through the pipeline
	replays := []struct {
		name string
		path string
		run  func() error
	}{
		{"prices", cfg.Feeds.Prices, func() error { return feed.ReplayPrices(cfg.Feeds.Prices, pricingSvc) }},
		{"trades", cfg.Feeds.Trades, func() error { return feed.ReplayTrades(cfg.Feeds.Trades, bookingSvc) }},
		{"market_data", cfg.Feeds.MarketData, func() error { return feed.ReplayMarketData(cfg.Feeds.MarketData, marketDataSvc) }},
		{"inquiries", cfg.Feeds.Inquiries, func() error { return feed.ReplayInquiries(cfg.Feeds.Inquiries, inquirySvc) }},
	}
	for _, r := range replays {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Infow("replaying feed", "feed", r.name, "path", r.path)
		if err := r.run(); err != nil {
			return err
		}
	}

	for _, name := range journal.Services() {
		log.Infow("journal", "service", name, "events", len(journal.Entries(name)))
	}
	return nil
}
