package version

import (
	"context"
	"fmt"
	"time"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/style"
	"github.com/kinometa/kinometa/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release is available. It gives up silently after a few seconds.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/kinometa/kinometa/releases/tag/v"+latest),
	)
}
