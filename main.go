package main

import (
	"fmt"
	"os"

	"github.com/frankwiersma/namecheap-checker/command/check"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	CheckerVersion = "v0.1.0"
	CheckerDate    string
)

func init() {
	cli.VersionPrinter = versionPrinter
}

func main() {
	app := cli.NewApp()
	app.Author = "Frank Wiersma"
	app.Before = beforeFunc
	app.EnableBashCompletion = true
	app.Name = os.Args[0]
	app.Usage = fmt.Sprintf("check a namecheap domain portfolio(%s)", CheckerDate)
	app.Version = CheckerVersion
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "debug, d",
			EnvVar: "DEBUG",
			Usage:  "used to set debug mode.",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "fetch the domain list and print the renewal report",
			Flags:   check.Flags(),
			Action:  check.Action,
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func beforeFunc(c *cli.Context) error {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
	return nil
}

func versionPrinter(c *cli.Context) {
	if _, err := fmt.Fprintf(c.App.Writer, CheckerVersion); err != nil {
		logrus.Error(err)
	}
}
