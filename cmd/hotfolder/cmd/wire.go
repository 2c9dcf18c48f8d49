//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
	"github.com/hotfolder/hotfolder/pkg/interfaces"
)

func injectedHotfolder(
	*config.Config, *zap.SugaredLogger,
) (
	interfaces.Hotfolder, error,
) {
	panic(wire.Build(set))
}
