package grpcapi

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// OrderServiceName is the name reported by the health service.
const OrderServiceName = "leorit.order.v1.OrderService"

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	log    *zap.Logger
}

// NewServer builds the gRPC server that exposes the standard health protocol
// for orchestrator probes.
func NewServer(log *zap.Logger) *Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(OrderServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{grpc: grpcServer, health: healthServer, log: log}
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC server started", zap.String("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Shutdown marks every service as not serving and drains open streams.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
