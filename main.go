// Package main is the entry point of kinometa.
package main

import (
	"github.com/kinometa/kinometa/cmd"
	"github.com/kinometa/kinometa/config"
	"github.com/kinometa/kinometa/internal/cache"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/util"
	"github.com/kinometa/kinometa/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go func() {
		_ = util.Delete(where.Temp())

		if removed := cache.CollectGarbage(network.CacheTTL()); removed > 0 {
			log.Infof("removed %d expired responses", removed)
		}
	}()

	cmd.Execute()
}
