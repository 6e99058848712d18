package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/dataloader"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Errorf("[client][status: ERROR] %s", err.Error())
		os.Exit(1)
	}

	log.Debug("Finish main.go")
}

// run builds the client and runs the session. Its deferred shutdowns end before main exits
func run() error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := InitLogger(appConfig.LogLevel); err != nil {
		return err
	}

	var publisher reportPublisher
	if appConfig.Publisher.Enabled {
		rabbitMQ, err := communication.NewRabbitMQ(appConfig.Publisher.RabbitURL)
		if err != nil {
			return err
		}

		defer func() {
			if err := rabbitMQ.KillBadBunny(); err != nil {
				log.Errorf("[client][status: ERROR] %s", err.Error())
			}
		}()

		err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{appConfig.Publisher.Queue})
		if err != nil {
			return err
		}
		publisher = communication.NewReportPublisher(rabbitMQ, appConfig.Publisher.Queue)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := utils.GetSignalChannel()
	go func() {
		<-signalChannel
		log.Info("[client] signal received, finishing session")
		cancel()
	}()

	loader := dataloader.NewDataLoader(appConfig.Data)
	client := NewClient(appConfig, loader, os.Stdin, os.Stdout, publisher)
	return client.Run(ctx)
}
