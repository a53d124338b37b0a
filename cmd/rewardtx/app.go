package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-rewardtx/cmd"
	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/config"
	"github.com/spacemeshos/go-rewardtx/ledger"
	"github.com/spacemeshos/go-rewardtx/metrics"
	"github.com/spacemeshos/go-rewardtx/sql"
)

// app is the state shared by subcommands once the config is loaded.
type app struct {
	conf   *config.Config
	logger *zap.Logger
	db     *sql.Database
	ledger *ledger.Ledger
}

func (a *app) setup(c *cobra.Command) error {
	conf, err := cmd.LoadConfig(c.Flags())
	if err != nil {
		return err
	}
	logger, err := conf.Logging.Build()
	if err != nil {
		return err
	}
	types.SetAddressPrefix(conf.Address.Prefix)
	a.conf = conf
	a.logger = logger.With(
		zap.String("version", cmd.Version),
		zap.Stringer("run", uuid.New()),
	)
	return nil
}

// openLedger opens the database, creating it if needed.
func (a *app) openLedger() error {
	if err := os.MkdirAll(a.conf.DataDirParent, 0o700); err != nil {
		return fmt.Errorf("create data folder: %w", err)
	}
	db, err := sql.Open("file:"+a.conf.DBPath(),
		sql.WithLogger(a.logger.Named("db")),
		sql.WithConnections(a.conf.Database.Connections),
		sql.WithLatencyMetering(a.conf.Database.LatencyMetering),
	)
	if err != nil {
		return err
	}
	l, err := ledger.New(db,
		ledger.WithLogger(a.logger.Named("ledger")),
		ledger.WithConfig(a.conf.Ledger),
	)
	if err != nil {
		return errors.Join(err, db.Close())
	}
	a.db = db
	a.ledger = l
	return nil
}

func (a *app) close(ctx context.Context) error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.conf != nil {
		if perr := metrics.Push(ctx, a.conf.Metrics); perr != nil {
			a.logger.Warn("failed to push metrics", zap.Error(perr))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}
