package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"

	"github.com/hotfolder/hotfolder/internal/consts"
	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
)

var flags struct {
	CfgPath string
}

var rootCmd = &cobra.Command{
	Use:   "hotfolder [watchPath] [moveToFolder] [printFlag]",
	Short: "Watch a directory, display new documents, print and file them away",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+consts.CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun(args)
		return
	},
}

func rootCmdRun(args []string) (err error) {
	log := logger.Get("hotfolder")

	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == consts.HotfolderCfgPath {
		log.Debugw("Configuration file missing, fallback to default config.")

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		return err
	}

	var cfg *config.Config

	cfg, err = config.New(
		config.WithContent(content),
		config.WithArgs(args),
		config.WithLogger(log),
	)
	if err != nil {
		return
	}

	h, err := injectedHotfolder(cfg, log)
	if err != nil {
		return
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		h.Stop(&ErrCancelBySignal{Signal: sig})
	}()

	err = h.Run()
	if err == nil {
		return
	}

	log.Debugw(
		"Core exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", consts.HotfolderCfgPath,
		"the configure file to use",
	)
}
