package simapp_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc/test/bufconn"

	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

func (s *AppTestSuite) TestServeListenersTCP() {
	grpcListener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	apiListener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	app := s.newApp(s.db)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.ServeListeners(ctx, grpcListener, apiListener)
	}()

	url := fmt.Sprintf("http://%s%s/params", apiListener.Addr().String(), simapp.RESTRoutePrefix)
	s.Require().Eventually(func() bool {
		res, err := http.Get(url)
		if err != nil {
			return false
		}
		defer res.Body.Close()
		_, _ = io.Copy(io.Discard, res.Body)
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		s.Require().NoError(err)
	case <-time.After(15 * time.Second):
		s.FailNow("servers did not stop")
	}
}

func (s *AppTestSuite) TestServeListenersCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the servers may be stopped before the gRPC server starts serving
	s.Require().NoError(s.newApp(s.db).ServeListeners(ctx, bufconn.Listen(1024), nil))
}

func (s *AppTestSuite) TestServeInvalidAddress() {
	cfg := simapp.DefaultConfig()
	cfg.GRPCAddress = "not-an-address"

	s.Require().Error(s.newApp(s.db).Serve(context.Background(), cfg))
}
