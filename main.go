package main

import (
	"flag"
	"fmt"
	"log"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	inputFile   = flag.String("input", "", "Parse a vector file and print identified rooms as JSON to stdout")
	renderFile  = flag.String("render", "", "Render the input polylines and identified room boxes to a PNG for visual debugging")
	outputFile  = flag.String("output", "rooms.png", "Output file for -render mode")
	serveMode   = flag.Bool("serve", false, "Run the HTTP identify surface")
	mqttIntake  = flag.Bool("mqtt-intake", false, "Run the MQTT intake adapter")
	configFile  = flag.String("config", "", "Path to YAML configuration file")
	listenAddr  = flag.String("listen", ":8080", "Listen address for -serve mode")
	strokeFlag  = flag.Float64("stroke-thresh", 0, "Override the stroke-width threshold (0 keeps the configured default)")
)

func main() {
	flag.Parse()
	fmt.Printf("roomtrace version: %s\n", Version)

	app, err := NewApp(*configFile)
	if err != nil {
		log.Fatalf("roomtrace: %v", err)
	}

	switch {
	case *inputFile != "":
		app.RunIdentifyOnce(*inputFile, *strokeFlag)
	case *renderFile != "":
		app.RunRender(*renderFile, *outputFile, *strokeFlag)
	case *mqttIntake:
		app.RunMQTTIntake()
	case *serveMode:
		app.RunServe(*listenAddr)
	default:
		fmt.Println("roomtrace: nothing to do")
		fmt.Println("Use -input <file> to identify rooms in a vector document and print JSON")
		fmt.Println("Use -render <file> to write a debug PNG overlay")
		fmt.Println("Use -serve to run the HTTP identify surface")
		fmt.Println("Use -mqtt-intake to run the MQTT intake adapter")
		fmt.Println("Use -config <file> to load tunables and surface settings from YAML")
	}
}
