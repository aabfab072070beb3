package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/librescoot/mmwave-radar-service/internal/config"
	"github.com/librescoot/mmwave-radar-service/radar"
	"github.com/librescoot/mmwave-radar-service/reporter"
)

// Configuration flags
var (
	serialDevice = flag.String("serial", "", "Serial device path (overrides mmwave.uart from config)")
	baudRate     = flag.Int("baud", 0, "Serial baud rate (overrides mmwave.baud from config)")
	redisAddr    = flag.String("redis-addr", "localhost:6379", "Redis server address")
	redisPass    = flag.String("redis-pass", "", "Redis password")
	redisDB      = flag.Int("redis-db", 0, "Redis database number")
	entityID     = flag.String("entity", "binary_sensor.mmwave_presence", "Home Assistant entity id")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Starting mmWave radar service")

	args := flag.Args()
	sub := "watch"
	if len(args) > 0 {
		sub = args[0]
	}

	store, err := config.NewRedisStore(*redisAddr, *redisPass, *redisDB)
	if err != nil {
		log.Fatalf("Failed to load configuration from Redis: %v", err)
	}
	boot := config.LoadBootConfig(store)
	log.Printf("Loaded boot configuration: uart=%s baud=%d autostart_ha=%v", boot.UARTPath, boot.Baud, boot.AutostartHA)

	uartPath := boot.UARTPath
	if *serialDevice != "" {
		uartPath = *serialDevice
	}
	baud := boot.Baud
	if *baudRate != 0 {
		baud = *baudRate
	}

	session, err := radar.NewSession(uartPath, baud)
	if err != nil {
		log.Fatalf("Failed to open radar session on %s: %v", uartPath, err)
	}
	defer session.Shutdown()
	log.Printf("Radar session open on %s at %d baud", uartPath, baud)

	var rep *reporter.Reporter
	if boot.AutostartHA {
		rep = reporter.New(reporter.Config{
			Host:          boot.HAURL,
			Port:          boot.HAPort,
			Token:         boot.HAToken,
			EntityID:      *entityID,
			MinIntervalMS: 500,
		}, session)
		rep.Start()
		defer rep.Stop()
		log.Printf("Home Assistant reporter started -> %s:%d", boot.HAURL, boot.HAPort)
	}

	switch sub {
	case "status":
		runStatus(session)
		return
	case "json":
		runJSON(session)
		return
	case "watch":
		runWatch(session)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q (want status|watch|json)\n", sub)
		os.Exit(1)
	}
}

func runStatus(s *radar.Session) {
	stats := s.Stats()
	reading, err := s.Latest()
	fmt.Printf("frames_ok=%d frames_err=%d cmd_timeouts=%d\n", stats.FramesOK, stats.FramesErr, stats.CmdTimeouts)
	if err != nil {
		fmt.Printf("latest: %v\n", err)
		return
	}
	fmt.Printf("target_state=%d motion=%d/%d static=%d/%d detect=%d\n",
		reading.TargetState, reading.MotionDistanceCM, reading.MotionEnergy,
		reading.StaticDistanceCM, reading.StaticEnergy, reading.DetectionDistanceCM)
}

func runJSON(s *radar.Session) {
	reading, err := s.Latest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "latest: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.Encode(reading)
}

func runWatch(s *radar.Session) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			log.Printf("Shutting down...")
			return
		case <-ticker.C:
			runStatus(s)
		}
	}
}
