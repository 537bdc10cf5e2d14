package main

import (
	"github.com/cubeengine/ore-deploy-go/cli"
	"github.com/cubeengine/ore-deploy-go/utils"
	clitool "github.com/urfave/cli/v2"
	"os"
)

var log utils.Log

func main() {
	log = utils.NewDefaultLogger(getCliLogLevel())
	app := &clitool.App{
		Name:     "ore-deploy",
		Usage:    "upload a built and signed plugin to an Ore repository",
		Commands: cli.GetCommands(log),
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getCliLogLevel() utils.LevelType {
	switch os.Getenv("ORE_DEPLOY_LOG_LEVEL") {
	case "ERROR":
		return utils.ERROR
	case "WARN":
		return utils.WARN
	case "DEBUG":
		return utils.DEBUG
	default:
		return utils.INFO
	}
}
