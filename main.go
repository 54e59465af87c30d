package main

import (
	"github.com/sirupsen/logrus"

	"github.com/heathj/commentrender/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
