package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/polarbots/mculink/pkg/framework"
	"github.com/polarbots/mculink/pkg/link"
	"github.com/polarbots/mculink/pkg/pub/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/mculink/"

	linkConfig *link.Config
)

func init() {
	if val := os.Getenv("MCULINK_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	linkConfig = link.NewConfig()
	linkConfig.SetupFlags()
}

func main() {
	flag.Parse()

	engine, err := link.NewEngine(linkConfig)
	if err != nil {
		glog.Exitf("configuration: %v", err)
	}
	queue, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Exitf("broker url: %v", err)
	}
	bridge := mqtt.NewBridge(queue, engine)

	runner := framework.NewRunner().HandleSignals()
	runner.Go(
		framework.NamedRun("engine", engine),
		framework.NamedRun("bridge", bridge),
	)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
