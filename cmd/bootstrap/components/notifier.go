package components

import (
	"context"
	"log/slog"

	"meetup-api/internal/notification"
	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			notification.NewPgJobStore,
			fx.As(new(notification.JobStore)),
		),
		NewMailer,
		NewNotificationWorker,
	),
	fx.Invoke(StartNotificationWorker),
)

func NewMailer(cfg config.Config, logger *slog.Logger) notification.Mailer {
	if cfg.SMTP.Driver == "log" {
		logger.Info("メール送信はログ出力モードです")
		return notification.NewLogMailer()
	}
	return notification.NewSMTPMailer(cfg.SMTP)
}

func NewNotificationWorker(store notification.JobStore, mailer notification.Mailer, clk clock.Clock, cfg config.Config) *notification.Worker {
	return notification.NewWorker(store, mailer, clk, cfg.Notifier)
}

// StartNotificationWorker runs the outbox worker for the whole process
// lifetime. Shutdown waits for the in-flight batch to finish so claimed
// jobs are acked instead of left in "sending".
func StartNotificationWorker(lc fx.Lifecycle, worker *notification.Worker, cfg config.Config, logger *slog.Logger) {
	if !cfg.Notifier.Enabled {
		logger.Info("通知ワーカーは無効化されています")
		return
	}

	workerCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("通知ワーカーを起動します",
				"poll_interval", cfg.Notifier.PollInterval,
				"batch_size", cfg.Notifier.BatchSize,
			)
			go worker.Start(workerCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			worker.Wait()
			logger.Info("通知ワーカーを停止しました")
			return nil
		},
	})
}
