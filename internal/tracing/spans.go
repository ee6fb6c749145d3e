package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrRoomID   = "room.id"
	AttrCallID   = "call.id"
	AttrMsgType  = "message.type"
	AttrCommand  = "command.name"
	AttrMimeType = "media.mimetype"
	AttrOutcome  = "delay.outcome"

	AttrErrorMessage = "error.message"
)

// SpanPrefixRoom prefixes the spans opened by room view-model commands.
const SpanPrefixRoom = "RoomViewModel."

// StartCommand opens a span for a view-model command.
func StartCommand(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String(AttrCommand, name))
	return tracer.Start(ctx, SpanPrefixRoom+name, trace.WithAttributes(attrs...))
}

// Fail marks span as failed with err. A nil err marks it OK.
func Fail(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	span.SetStatus(codes.Error, err.Error())
}
