// Package main runs the portal uptime monitor. It polls the portal URL
// and reports outages and periodic heartbeats to a Telegram chat.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nuanu-wifi/backend/config"
)

const probeTimeout = 15 * time.Second

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Monitor.TelegramToken == "" || cfg.Monitor.TelegramChatID == 0 {
		logger.Fatal("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
	}

	b, err := bot.New(cfg.Monitor.TelegramToken)
	if err != nil {
		logger.Fatal("telegram bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := &monitor{
		target:    cfg.Monitor.TargetURL,
		chatID:    cfg.Monitor.TelegramChatID,
		bot:       b,
		client:    &http.Client{Timeout: probeTimeout},
		logger:    logger,
		interval:  time.Duration(cfg.Monitor.IntervalSeconds) * time.Second,
		heartbeat: time.Duration(cfg.Monitor.HeartbeatSeconds) * time.Second,
	}

	logger.Info("monitor started",
		zap.String("target", m.target),
		zap.Duration("interval", m.interval))
	m.run(ctx)
	logger.Info("monitor stopped")
}

type monitor struct {
	target    string
	chatID    int64
	bot       *bot.Bot
	client    *http.Client
	logger    *zap.Logger
	interval  time.Duration
	heartbeat time.Duration

	down          bool
	lastHeartbeat time.Time
}

func (m *monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *monitor) check(ctx context.Context) {
	err := m.probe(ctx)
	now := time.Now()

	switch {
	case err != nil && !m.down:
		m.down = true
		m.logger.Warn("portal is down", zap.Error(err))
		m.notify(ctx, fmt.Sprintf("🔴 Portal DOWN: %s\n%v", m.target, err))
	case err != nil:
		m.logger.Warn("portal still down", zap.Error(err))
	case m.down:
		m.down = false
		m.lastHeartbeat = now
		m.logger.Info("portal recovered")
		m.notify(ctx, fmt.Sprintf("🟢 Portal recovered: %s", m.target))
	case now.Sub(m.lastHeartbeat) >= m.heartbeat:
		m.lastHeartbeat = now
		m.notify(ctx, fmt.Sprintf("✅ Portal is up: %s", m.target))
	}
}

func (m *monitor) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.target, nil)
	if err != nil {
		return err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func (m *monitor) notify(ctx context.Context, text string) {
	_, err := m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: m.chatID,
		Text:   text,
	})
	if err != nil {
		m.logger.Error("telegram send failed", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
