package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("should carry the service name", func(t *testing.T) {
		res, err := newResource("blockledger")
		require.NoError(t, err)
		require.NotNil(t, res)

		value, ok := res.Set().Value(semconv.ServiceNameKey)
		require.True(t, ok, "service name attribute not found in resource")
		assert.Equal(t, "blockledger", value.AsString())
	})

	t.Run("should accept an empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestLoggerProvider(t *testing.T) {
	t.Run("should be nil until a provider is registered", func(t *testing.T) {
		setLoggerProvider(nil)
		assert.Nil(t, LoggerProvider())
	})

	t.Run("should return the registered provider", func(t *testing.T) {
		lp := sdklog.NewLoggerProvider()
		defer func() {
			_ = lp.Shutdown(context.Background())
			setLoggerProvider(nil)
		}()

		setLoggerProvider(lp)
		assert.Same(t, lp, LoggerProvider())
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	defer func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
		setLoggerProvider(nil)
	}()

	t.Run("should register providers and shut them down", func(t *testing.T) {
		shutdown, err := Init(context.Background(), "blockledger-test")
		if err != nil {
			// Exporter construction can fail in sandboxes without network configuration.
			t.Logf("Init() failed: %v", err)
			return
		}

		require.NotNil(t, shutdown)
		assert.NotNil(t, LoggerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			// Flushing fails when no collector is listening.
			t.Logf("ShutdownFunc() returned error: %v", err)
		}
		assert.Nil(t, LoggerProvider())
	})
}
