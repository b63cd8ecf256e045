package ipc

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	metricCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "browserd",
		Name:      "commands_total",
		Help:      "RPC commands received, by method.",
	}, []string{"method"})
	metricCommandFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "browserd",
		Name:      "command_failures_total",
		Help:      "RPC commands that returned an error, by method and status code.",
	}, []string{"method", "code"})
)

// metricsUnaryInterceptor counts every command and its outcome without
// inspecting business state.
func metricsUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := info.FullMethod
	if i := strings.LastIndexByte(method, '/'); i >= 0 {
		method = method[i+1:]
	}
	metricCommands.WithLabelValues(method).Inc()

	resp, err := handler(ctx, req)
	if err != nil {
		metricCommandFailures.WithLabelValues(method, status.Code(err).String()).Inc()
	}
	return resp, err
}
