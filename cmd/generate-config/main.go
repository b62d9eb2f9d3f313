package main

import (
	"flag"
	"io"
	"os"

	"cribbage-server/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var output = flag.String("o", "", "write the configuration to this file instead of stdout")

func main() {
	flag.Parse()

	if err := run(*output); err != nil {
		logrus.WithError(err).Fatal("could not generate config")
	}
}

func run(output string) error {
	if output == "" {
		return writeConfig(os.Stdout)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := writeConfig(file); err != nil {
		_ = file.Close()
		_ = os.Remove(output)
		return err
	}

	return file.Close()
}

func writeConfig(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(config.DefaultConfig())
}
