package service

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("mergington.dev/backend/internal/service")
