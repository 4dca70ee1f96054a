package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/devblok/vkctx/config"
	"github.com/devblok/vkctx/core"
	"github.com/devblok/vkctx/device"
	"github.com/devblok/vkctx/logger"
	"github.com/devblok/vkctx/window"
)

func init() {
	runtime.LockOSThread()
}

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
	debug        = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	configFile   = flag.String("config", "", "YAML configuration file")
	envFile      = flag.String("env", "", "Dotenv configuration file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := trace.Start(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer trace.Stop()
	}

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
	if *debug {
		settings.Engine.Bootstrap.Validation = true
	}

	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log, err := logger.New(logger.Options{Level: level, Format: settings.LogFormat})
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

	vkContext, err := core.Bootstrap(platform, driver, settings.Engine.Bootstrap, log.WithComponent("bootstrap"))
	if err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
		return 1
	}
	defer vkContext.Destroy()

	props := vkContext.PhysicalDeviceProperties()
	log.Infof("Context ready on %s (%s), unified graphics and present queue: %t",
		props.Name, props.Type, vkContext.Unified())

	timeService := core.NewTime(settings.Engine.Time)
	defer timeService.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	core.PollUntilClosed(ctx, vkContext.Window(), timeService)
	log.Infof("Event loop exited")
	return 0
}
