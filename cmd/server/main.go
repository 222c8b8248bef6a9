package main // Entry point package

import (
	"context"   // Shutdown deadline
	"errors"    // Distinguish a clean stop from a failure
	"log"       // Logging library
	"net/http"  // http.ErrServerClosed
	"os"        // Signal values and exit status
	"os/signal" // Stop on SIGINT/SIGTERM
	"syscall"   // SIGTERM sent by container runtimes

	"github.com/redis/go-redis/v9" // Optional rate limiter backend

	"github.com/iliyamo/greeting-service/internal/config" // Internal config loader
	"github.com/iliyamo/greeting-service/internal/router" // Internal router setup
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// run serves until the process is signalled or the listener fails.  Deferred
// cleanup always runs before main decides the exit status.
func run() error {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		opts := config.RedisOptions()
		if rdb = config.NewRedisClient(ctx, opts); rdb == nil {
			log.Printf("redis unreachable at %s; rate limiting disabled", opts.Addr)
		} else {
			defer rdb.Close()
		}
	}

	e := router.New(cfg, rdb)

	addr := cfg.Addr()
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("server stopped")
	return nil
}
