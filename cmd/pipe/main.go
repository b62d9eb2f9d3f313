//go:build unix

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cribbage-server/internal/config"
	"cribbage-server/internal/fifo"
	"cribbage-server/internal/util"
	"cribbage-server/pkg/cribbage"

	"github.com/sirupsen/logrus"
)

var message = flag.String("m", "", "the hand to send to the server, shared card first (i.e., \"5H 5C 5D JH 5S\")")
var server = flag.Bool("s", false, "act as server (score hands written to the pipe)")
var file = flag.String("f", "", "the named pipe (defaults to pipe.path from the configuration)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	if *message != "" && *server {
		fmt.Fprintln(os.Stderr, "You must use either -s or -m, not both")
		os.Exit(1)
	} else if *message == "" && !*server {
		fmt.Fprintln(os.Stderr, "You must specify one of the following: -s or -m")
		os.Exit(1)
	}

	path := *file
	if path == "" {
		path = cfg.Pipe.Path
	}

	pipe := fifo.New(path)

	if !*server {
		if err := pipe.Write(*message); err != nil {
			logrus.WithError(err).Fatal("could not write to pipe")
		}

		return
	}

	if err := pipe.Create(); err != nil {
		logrus.WithError(err).Fatal("could not create pipe")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Hit ^C to quit the server")
	logrus.WithField("path", path).Info("listening")

	err := pipe.Listen(ctx, scoreLine)
	if rmErr := pipe.Remove(); rmErr != nil {
		logrus.WithError(rmErr).Error("could not remove pipe")
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not read from pipe")
	}
}

func scoreLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	hand, err := cribbage.ParseHand(line)
	if err != nil {
		logrus.WithError(err).WithField("line", line).Warn("could not score hand")
		return
	}

	scores := hand.Scores()
	logrus.WithFields(logrus.Fields{
		"hand":     hand.String(),
		"pairs":    len(scores.Pairs),
		"runs":     len(scores.Runs),
		"flush":    len(scores.Flush),
		"fifteens": len(scores.Fifteens),
		"nobs":     scores.Nobs != nil,
		"score":    scores.Score,
	}).Info("scored hand")
}
