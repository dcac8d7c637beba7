package run

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/radio47ke/companion/domain/model/playback"
	"github.com/radio47ke/companion/domain/model/reminder"
	"github.com/radio47ke/companion/domain/model/schedule"
	"github.com/radio47ke/companion/domain/repository"
	"github.com/radio47ke/companion/infrastructures/accountapi"
	"github.com/radio47ke/companion/infrastructures/localnotify"
	"github.com/radio47ke/companion/infrastructures/sqlite"
	"github.com/radio47ke/companion/internal/errutil"
	"github.com/radio47ke/companion/internal/fileutil"
	"github.com/radio47ke/companion/internal/logutil"
	"github.com/radio47ke/companion/internal/timeutil"
	"github.com/radio47ke/companion/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "run components",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	return rootCmd
}

func run() error {
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "R47_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Info().Msgf("Set %s to %v (default? %v)\n", tag, value, isDefault)
		},
	})
	if err != nil {
		return err
	}

	err = fileutil.MkdirAllIfNotExist(filepath.Dir(config.SqlitePath))
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(config.SqlitePath)
	if err != nil {
		return err
	}

	err = sqlite.Setup(db)
	if err != nil {
		return err
	}
	log.Info().Msg("setup done")

	localFavorites := sqlite.NewFavorites(db)
	localSettings := sqlite.NewSettings(db)

	var remoteFavorites repository.FavoritesStore
	var remoteSettings repository.SettingsStore
	if config.AccountBaseURL != "" {
		accountClient, err := accountapi.New(config.AccountBaseURL, config.AccountToken)
		if err != nil {
			return err
		}
		remoteFavorites = accountClient
		remoteSettings = accountClient
		log.Info().Msg("account sync enabled")
	}

	delivery := localnotify.New(func(p reminder.Pending) {
		log.Info().
			Str("category", p.Category.String()).
			Str("title", p.Reminder.Title).
			Msg(p.Reminder.Body)
	})
	defer delivery.Stop()

	table := schedule.Default()
	ucFavorites := usecase.NewFavorites(localFavorites, remoteFavorites)
	ucSettings := usecase.NewSettings(localSettings, remoteSettings)
	ucNotifier := usecase.NewNotifier(table, ucFavorites, ucSettings, delivery)

	ctx := context.Background()

	playbackState := playback.NewState()
	playbackState.Subscribe(func(snap playback.Snapshot) {
		if snap.Live {
			log.Info().Msg("live stream active, audio paused")
		}
		err := ucNotifier.UpdatePlaybackNotification(ctx, time.Now().In(timeutil.LocationEAT()))
		if err != nil {
			log.Error().Msgf("%+v", err)
		}
	})

	scheduler := gocron.NewScheduler(timeutil.LocationEAT())

	jobReschedule := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "reschedule").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		err := ucNotifier.RescheduleShowReminders(ctx, time.Now().In(timeutil.LocationEAT()))
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.RescheduleEvery).DoWithJobDetails(jobReschedule, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	jobTuneIn := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "tune_in").
			Logger().WithContext(ctx)

		err = ucNotifier.EnsureTuneInReminder(ctx, time.Now().In(timeutil.LocationEAT()))
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.TuneInEvery).DoWithJobDetails(jobTuneIn, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()
	scheduler.RunAllWithDelay(10 * time.Second)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Interrupt")
	defer db.Close()

	return nil
}
