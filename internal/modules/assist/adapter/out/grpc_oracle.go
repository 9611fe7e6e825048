package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	assistrpc "konkrete/internal/modules/assist/adapter/out/rpc"
	"konkrete/internal/modules/assist/domain"
	assistout "konkrete/internal/modules/assist/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	classifyTimeout     = 5 * time.Second
	coachTimeout        = 30 * time.Second
)

// GRPCOracle spawns the assistant binary per call and tears it down
// afterwards. Calls are infrequent enough that keeping the process
// warm is not worth managing its lifecycle.
type GRPCOracle struct{}

func NewGRPCOracle() assistout.Oracle {
	return &GRPCOracle{}
}

func (o *GRPCOracle) ClassifyIcon(ctx context.Context, manifest domain.Manifest, topicName string) (string, error) {
	client, closeFn, err := o.connect(manifest)
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := o.callContext(ctx, classifyTimeout)
	defer cancel()

	response, err := client.ClassifyIcon(callCtx, &assistrpc.ClassifyIconRequest{TopicName: topicName})
	if err != nil {
		return "", fmt.Errorf("classify icon: %w", err)
	}
	return response.Icon, nil
}

func (o *GRPCOracle) CoachReply(ctx context.Context, manifest domain.Manifest, history []domain.ChatMessage, message, contextPrompt string) (string, error) {
	client, closeFn, err := o.connect(manifest)
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := o.callContext(ctx, coachTimeout)
	defer cancel()

	turns := make([]assistrpc.ChatTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, assistrpc.ChatTurn{Role: msg.Role, Text: msg.Text})
	}
	response, err := client.CoachReply(callCtx, &assistrpc.CoachReplyRequest{
		History:       turns,
		Message:       message,
		ContextPrompt: contextPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("coach reply: %w", err)
	}
	return response.Text, nil
}

func (o *GRPCOracle) connect(manifest domain.Manifest) (assistrpc.AssistantClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  assistrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          assistrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start assistant client: %w", err)
	}
	raw, err := rpcClient.Dispense(assistrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense assistant: %w", err)
	}
	typed, ok := raw.(assistrpc.AssistantClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("assistant rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (o *GRPCOracle) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
