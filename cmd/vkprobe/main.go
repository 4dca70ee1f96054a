package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/vkctx/config"
	"github.com/devblok/vkctx/core"
	"github.com/devblok/vkctx/device"
	"github.com/devblok/vkctx/logger"
	"github.com/devblok/vkctx/window"
)

func init() {
	runtime.LockOSThread()
}

var (
	debug      = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	configFile = flag.String("config", "", "YAML configuration file")
	envFile    = flag.String("env", "", "Dotenv configuration file")
	pretty     = flag.Bool("pretty", false, "Indent the JSON output")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	store, err := config.Sources(*envFile, *configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	settings, err := config.Load(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	settings.Engine.Bootstrap.Validation = settings.Engine.Bootstrap.Validation || *debug

	// Only warnings and worse, stdout carries the report.
	log, err := logger.New(logger.Options{Level: logger.Warn, Format: settings.LogFormat})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	platform, err := window.Open(settings.Backend)
	if err != nil {
		log.Fatalf("Failed to initialise windowing: %v", err)
		return 1
	}
	defer platform.Terminate()

	driver, err := device.NewVulkanDriver(platform.ProcAddr())
	if err != nil {
		log.Fatalf("Failed to load Vulkan: %v", err)
		return 1
	}

	reports, err := core.Probe(platform, driver, settings.Engine.Bootstrap, log)
	if err != nil {
		log.Fatalf("Probe failed: %v", err)
		return 1
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(reports, "", "  ")
	} else {
		out, err = json.Marshal(reports)
	}
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
		return 1
	}
	fmt.Printf("%s\n", out)
	return 0
}
