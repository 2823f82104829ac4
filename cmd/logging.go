package cmd

import (
	"github.com/achilleasa/rtview/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtview")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}
}
