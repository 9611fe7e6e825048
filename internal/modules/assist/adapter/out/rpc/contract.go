package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey       = "assistant"
	serviceName        = "konkrete.assist.v1.Assistant"
	jsonCodecName      = "json"
	methodGetMetadata  = "/" + serviceName + "/GetMetadata"
	methodClassifyIcon = "/" + serviceName + "/ClassifyIcon"
	methodCoachReply   = "/" + serviceName + "/CoachReply"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "KONKRETE_ASSIST",
	MagicCookieValue: "konkrete",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ClassifyIconRequest struct {
	TopicName string `json:"topic_name"`
}

type ClassifyIconResponse struct {
	// Icon is empty when the assistant has no confident suggestion.
	Icon string `json:"icon"`
}

type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type CoachReplyRequest struct {
	History       []ChatTurn `json:"history"`
	Message       string     `json:"message"`
	ContextPrompt string     `json:"context_prompt"`
}

type CoachReplyResponse struct {
	Text string `json:"text"`
}

type AssistantServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ClassifyIcon(ctx context.Context, in *ClassifyIconRequest) (*ClassifyIconResponse, error)
	CoachReply(ctx context.Context, in *CoachReplyRequest) (*CoachReplyResponse, error)
}

type AssistantClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ClassifyIcon(ctx context.Context, in *ClassifyIconRequest) (*ClassifyIconResponse, error)
	CoachReply(ctx context.Context, in *CoachReplyRequest) (*CoachReplyResponse, error)
}

type assistantClient struct {
	conn *grpc.ClientConn
}

func NewAssistantClient(conn *grpc.ClientConn) AssistantClient {
	return &assistantClient{conn: conn}
}

func (c *assistantClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assistantClient) ClassifyIcon(ctx context.Context, in *ClassifyIconRequest) (*ClassifyIconResponse, error) {
	out := &ClassifyIconResponse{}
	if err := c.conn.Invoke(ctx, methodClassifyIcon, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assistantClient) CoachReply(ctx context.Context, in *CoachReplyRequest) (*CoachReplyResponse, error) {
	out := &CoachReplyResponse{}
	if err := c.conn.Invoke(ctx, methodCoachReply, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterAssistantServer(server grpc.ServiceRegistrar, impl AssistantServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*AssistantServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "ClassifyIcon",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &ClassifyIconRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.ClassifyIcon(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodClassifyIcon}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*ClassifyIconRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.ClassifyIcon(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "CoachReply",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &CoachReplyRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.CoachReply(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCoachReply}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*CoachReplyRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.CoachReply(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/assistant-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl AssistantServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterAssistantServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewAssistantClient(conn), nil
}

func PluginMap(impl AssistantServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
