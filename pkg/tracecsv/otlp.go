// OTLP export of a reconstructed trace tree.
// Emits an ExportTraceServiceRequest in protojson form so standard trace
// tooling can ingest the dump. The CSV format has no globally unique
// span identifiers, so fresh IDs are synthesised per export.
package tracecsv

import (
	"fmt"

	"github.com/google/uuid"
	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// serviceName identifies exported traces in downstream tooling.
const serviceName = "qtrace"

// MarshalOTLP serialises the tree as an OTLP JSON trace export. Span and
// trace IDs are synthesised fresh on every call; log messages become span
// events timestamped at span start plus message age.
func MarshalOTLP(root *TraceNode) ([]byte, error) {
	traceID := uuid.New()

	var spans []*tracepb.Span
	var walk func(n *TraceNode, parentID []byte)
	walk = func(n *TraceNode, parentID []byte) {
		spanID := uuid.New()
		span := &tracepb.Span{
			TraceId:           traceID[:],
			SpanId:            spanID[:8],
			ParentSpanId:      parentID,
			Name:              n.Operation,
			StartTimeUnixNano: uint64(n.Timestamp.UnixNano()),                 //nolint:gosec // dump timestamps are always positive
			EndTimeUnixNano:   uint64(n.Timestamp.Add(n.Duration).UnixNano()), //nolint:gosec // dump timestamps are always positive
			Attributes:        otlpAttrs(n),
		}
		for _, m := range n.Messages {
			span.Events = append(span.Events, &tracepb.Span_Event{
				TimeUnixNano: uint64(n.Timestamp.Add(m.Age).UnixNano()), //nolint:gosec // dump timestamps are always positive
				Name:         m.Message,
			})
		}
		spans = append(spans, span)
		for _, child := range n.Children {
			walk(child, spanID[:8])
		}
	}
	walk(root, nil)

	req := &coltracepb.ExportTraceServiceRequest{
		ResourceSpans: []*tracepb.ResourceSpans{{
			Resource: &resourcepb.Resource{
				Attributes: []*commonpb.KeyValue{strAttr("service.name", serviceName)},
			},
			ScopeSpans: []*tracepb.ScopeSpans{{Spans: spans}},
		}},
	}

	out, err := protojson.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshalling OTLP: %w", err)
	}
	return out, nil
}

// otlpAttrs converts span metadata and extracted attributes to OTLP form.
func otlpAttrs(n *TraceNode) []*commonpb.KeyValue {
	var kvs []*commonpb.KeyValue
	kvs = append(kvs, strAttr("span.id", fmt.Sprint(n.SpanID)))
	if n.Location != "" {
		kvs = append(kvs, strAttr("code.location", n.Location))
	}
	if n.Tag != "" {
		kvs = append(kvs, strAttr("span.tag", n.Tag))
	}
	for k, v := range n.Attrs {
		kvs = append(kvs, strAttr(k, v))
	}
	return kvs
}

func strAttr(key, value string) *commonpb.KeyValue {
	return &commonpb.KeyValue{
		Key:   key,
		Value: &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: value}},
	}
}
