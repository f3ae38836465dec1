// Command breachweb serves the breach-check form and forwards submissions to
// the configured backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Goofygiraffe06/breachcheck/api"
	"github.com/Goofygiraffe06/breachcheck/internal/breach"
	"github.com/Goofygiraffe06/breachcheck/internal/config"
	"github.com/Goofygiraffe06/breachcheck/internal/logging"
)

// Run starts the server and blocks until ctx is cancelled or the listener fails.
func Run(ctx context.Context) error {
	client := breach.NewClient(config.CheckEndpoint(), breach.WithTimeout(config.CheckTimeout()))
	logging.InfoLog("Breach check endpoint: %s", client.Endpoint())

	router := api.NewRouter(client, api.RouterOptions{
		MaxBodyBytes:   config.MaxRequestBodyBytes(),
		AllowedOrigins: config.CORSAllowedOrigins(),
	})

	srv := &http.Server{
		Addr:              ":" + config.Port(),
		Handler:           router,
		ReadTimeout:       config.ServerReadTimeout(),
		ReadHeaderTimeout: config.ServerReadHeaderTimeout(),
		WriteTimeout:      config.ServerWriteTimeout(),
		IdleTimeout:       config.ServerIdleTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		logging.InfoLog("breachweb listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logging.InfoLog("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctxShutdown)
}

func main() {
	f, err := logging.InitLogger(config.LogFile(), config.IsProduction())
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer f.Close()
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		logging.FatalLog("Server failed: %v", err)
	}
}
