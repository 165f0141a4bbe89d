package service

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

// accessLogInterceptor stores a request scoped logger in the context and logs
// the outcome of every call.
func accessLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDHeader); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := log.With().
		Str("requestId", requestID).
		Str("method", info.FullMethod).
		Logger()
	ctx = logger.WithContext(ctx)
	if err := grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID)); err != nil {
		logger.Trace().Err(err).Msg("Failed to set request id header")
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	event := logger.Info()
	if code == codes.Internal || code == codes.Unknown {
		event = logger.Error()
	} else if err != nil {
		event = logger.Warn()
	}
	event.Str("code", code.String()).Dur("elapsed", time.Since(start)).Msg("Request finished")
	return resp, err
}

// recoveryInterceptor turns a handler panic into an INTERNAL status.
func recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			requestLogger(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msgf("Recovered from panic in %s", info.FullMethod)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(registry prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tunnel_manager",
			Name:      "grpc_requests_total",
			Help:      "gRPC requests handled, by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tunnel_manager",
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC request latency, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) interceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	m.duration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	m.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return resp, err
}
