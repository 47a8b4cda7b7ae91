package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	command := newRootCommand(os.Stdout)
	if err := command.Execute(); err != nil {
		logrus.WithError(err).Error("covary failed")
		os.Exit(1)
	}
}
