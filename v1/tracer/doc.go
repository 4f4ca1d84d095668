// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed
// tracing in Go applications. It abstracts away the complexity of OpenTelemetry
// to provide a clean, easy-to-use API for creating and managing trace spans
// around schema detection and query canonicalization workloads.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation
//   - Nil-safe receivers, so tracing stays optional for library consumers
//
// Basic Usage:
//
//	import (
//		"context"
//		"github.com/Aleph-Alpha/search-core/v1/logger"
//		"github.com/Aleph-Alpha/search-core/v1/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.DefaultConfig())
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "schema-detector",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(context.Background(), "detect-schema")
//	defer span.End()
//
// When used with the fx dependency injection framework, FXModule wires the
// client construction and shuts the provider down on application stop:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		fx.Supply(tracer.DefaultConfig()),
//	)
package tracer
