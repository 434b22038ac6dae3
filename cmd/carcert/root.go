package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/app"
	"github.com/carpartcert/carcert-cli/internal/client"
	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/profiles"
	"github.com/carpartcert/carcert-cli/internal/service"
	"github.com/carpartcert/carcert-cli/internal/store"
	"github.com/carpartcert/carcert-cli/models"
)

const (
	flagLimit    = "limit"
	flagFunction = "function"
	flagCaller   = "caller"

	defaultHistoryLimit = 20
)

var errPeerUnhealthy = errors.New("peer is not healthy")

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "carcert",
		Short:         "Interactive client for the carcert contract",
		Version:       info.BuildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	config.RegisterFlags(root.PersistentFlags())

	for _, name := range profiles.Names() {
		root.AddCommand(newProfileCmd(name, info))
	}
	root.AddCommand(newHistoryCmd(), newHealthCmd())

	return root
}

func newProfileCmd(name string, info models.AppBuildInfo) *cobra.Command {
	short := map[string]string{
		profiles.Console:  "Full asset menu as appUser",
		profiles.Sender:   "Create, update and delete assets as Sender",
		profiles.Receiver: "Read and query assets as Receiver",
	}[name]

	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBuildInfo(info, cmd.OutOrStdout())

			profile, err := profiles.Lookup(name)
			if err != nil {
				return err
			}

			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			log := logger.NewClientLogger("carcert-"+name, cfg.Log.File, cfg.Log.Level)
			defer log.Close()

			storages, err := store.NewClientStorages(cmd.Context(), cfg.Journal, log)
			if err != nil {
				log.Err(err).Msg("create journal storage")
				return err
			}
			defer storages.Close()

			services := service.NewClientServices(adapter.NewFabricLedger(log), storages, cfg.Ledger, log)
			a := client.NewApp(profile, cfg, services, cmd.InOrStdin(), cmd.OutOrStdout(), log)

			if err = a.Run(cmd.Context()); err != nil {
				if !errors.Is(err, service.ErrIdentityNotEnrolled) {
					log.Err(err).Str("profile", name).Msg("client run error")
				}
				return err
			}

			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List ledger calls recorded in the local journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if cfg.Journal.DSN == "" {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgNoJournal)
				return nil
			}

			filter := models.LedgerCallFilter{}
			if filter.Limit, err = cmd.Flags().GetUint64(flagLimit); err != nil {
				return err
			}
			if filter.Function, err = cmd.Flags().GetString(flagFunction); err != nil {
				return err
			}
			if filter.Identity, err = cmd.Flags().GetString(flagCaller); err != nil {
				return err
			}

			log := logger.NewClientLogger("carcert-history", cfg.Log.File, cfg.Log.Level)
			defer log.Close()
			storages, err := store.NewClientStorages(cmd.Context(), cfg.Journal, log)
			if err != nil {
				return err
			}
			defer storages.Close()

			calls, err := service.NewJournalService(storages.JournalRepository).Recent(log.WithContext(cmd.Context()), filter)
			if err != nil {
				return err
			}

			if len(calls) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgNoJournalCalls)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCalls(calls))

			return nil
		},
	}

	cmd.Flags().Uint64(flagLimit, defaultHistoryLimit, "Maximum number of entries (0 lists all)")
	cmd.Flags().String(flagFunction, "", "Only list calls of this contract function")
	cmd.Flags().String(flagCaller, "", "Only list calls made by this identity")

	return cmd
}

func renderCalls(calls []models.LedgerCall) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "IDENTITY", "KIND", "FUNCTION", "ARGS", "RESULT", "DURATION")

	for _, c := range calls {
		result := "ok"
		if !c.Succeeded {
			result = "error: " + c.Error
		}
		t.Row(
			c.CreatedAt.Local().Format(time.DateTime),
			c.Identity,
			string(c.Kind),
			c.Function,
			strings.Join(c.Args, ", "),
			result,
			c.Duration.String(),
		)
	}

	return t.String()
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the peer operations service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if err = cfg.ValidateHealth(); err != nil {
				return err
			}

			log := logger.NewClientLogger("carcert-health", cfg.Log.File, cfg.Log.Level)
			defer log.Close()

			prober, err := adapter.NewOperationsHealthProber(cfg.Ledger.OperationsURL, cfg.Ledger.Timeout, log)
			if err != nil {
				return err
			}

			report, err := service.NewHealthService(prober, log).Check(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), app.MsgPeerHealthy+"\n", report.Status)
			for _, failed := range report.FailedChecks {
				fmt.Fprintf(cmd.OutOrStdout(), app.MsgPeerCheck+"\n", failed.Component, failed.Reason)
			}
			if !report.Healthy() {
				return errPeerUnhealthy
			}

			return nil
		},
	}
}
