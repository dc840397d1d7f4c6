package simapp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

// Serve starts the gRPC server and, when enabled, the REST server. It blocks
// until ctx is cancelled or one of the servers fails, then stops both.
func (app *App) Serve(ctx context.Context, cfg Config) error {
	grpcListener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return err
	}

	var apiListener net.Listener
	if cfg.APIEnable {
		apiListener, err = net.Listen("tcp", cfg.APIAddress)
		if err != nil {
			grpcListener.Close()
			return err
		}
	}

	return app.ServeListeners(ctx, grpcListener, apiListener)
}

// ServeListeners serves gRPC on grpcListener and REST on apiListener. A nil
// apiListener disables REST.
func (app *App) ServeListeners(ctx context.Context, grpcListener, apiListener net.Listener) error {
	grpcServer, err := app.NewGRPCServer()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting gRPC server", "address", grpcListener.Addr().String())
		if err := grpcServer.Serve(grpcListener); !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	var apiServer *http.Server
	if apiListener != nil {
		restHandler, err := app.RESTHandler(ctx)
		if err != nil {
			return err
		}
		apiServer = &http.Server{
			Handler:           restHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			app.logger.Info("starting REST server", "address", apiListener.Addr().String())
			if err := apiServer.Serve(apiListener); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info("stopping servers")

		grpcServer.GracefulStop()
		if apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return apiServer.Shutdown(shutdownCtx)
		}
		return nil
	})

	return g.Wait()
}
