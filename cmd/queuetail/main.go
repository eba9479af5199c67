// queuetail drains and prints VMAF job descriptors, useful for checking what
// the worker fleet would receive without running a worker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"highlight-vmaf-service/ddd/infrastructure/queue"
	"highlight-vmaf-service/internal/resource"
	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.dev.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	config.SetGlobalConfig(cfg)
	logger.SetGlobalLogger(logger.NewLogger(cfg))

	resource.DefaultRedisResource().MustOpen()
	defer resource.DefaultRedisResource().Close()

	jobQueue := queue.NewVMAFJobQueue(resource.DefaultRedisResource().Client(), cfg.Queue)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Tailing queue %s (version %s), Ctrl-C to stop\n", cfg.Queue.QueueName(), cfg.Queue.ProcessorVersion)
	for {
		payload, err := jobQueue.BlockingPop(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logger.Errorf("Pop failed, reconnecting error=%v", err)
			if err := resource.DefaultRedisResource().Client().Reconnect(); err != nil {
				logger.Errorf("Reconnect failed error=%v", err)
			}
			continue
		}
		if payload == "" {
			// BLPOP timed out with an empty queue.
			continue
		}
		fmt.Println(payload)
	}
}
