// Package grpcserver runs the gRPC side of the service. It only exposes the
// standard grpc.health.v1 service, for orchestrators and load balancers.
package grpcserver

import (
	"net"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("") status.
const ServiceName = "tcg.TradingAPI"

// Server wraps a grpc.Server with a health service that starts NOT_SERVING.
type Server struct {
	srv    *grpc.Server
	health *health.Server
}

func New() *Server {
	s := &Server{
		srv:    grpc.NewServer(),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.srv, s.health)
	s.SetServing(false)
	return s
}

// Serve blocks accepting connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Log.Infow("gRPC server listening", "addr", lis.Addr().String())
	return s.srv.Serve(lis)
}

// SetServing switches both the overall and the named service status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	logger.Log.Infow("health status changed", "status", status.String())
}

// Stop marks the service NOT_SERVING and waits for in-flight RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
