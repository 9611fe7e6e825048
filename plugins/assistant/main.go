package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	assistrpc "konkrete/internal/modules/assist/adapter/out/rpc"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-plugin"
)

const (
	apiKeyEnv      = "KONKRETE_ASSIST_API_KEY"
	endpointEnv    = "KONKRETE_ASSIST_ENDPOINT"
	defaultBaseURL = "https://api.konkrete-assist.dev"
)

// Keyword rules the offline classifier falls back to. First match wins.
var iconRules = []struct {
	keywords []string
	icon     string
}{
	{[]string{"code", "coding", "program", "dev", "tech"}, "code"},
	{[]string{"read", "book", "study", "learn"}, "book"},
	{[]string{"gym", "workout", "exercise", "run", "health", "fitness"}, "dumbbell"},
	{[]string{"write", "writing", "draw", "design", "art"}, "pen-tool"},
	{[]string{"music", "guitar", "piano", "practice"}, "music"},
	{[]string{"work", "job", "business", "meeting"}, "briefcase"},
	{[]string{"break", "chill", "rest", "relax"}, "coffee"},
	{[]string{"travel", "language", "world"}, "globe"},
	{[]string{"photo", "camera", "film"}, "camera"},
	{[]string{"game", "gaming", "play"}, "gamepad-2"},
	{[]string{"love", "family", "friend"}, "heart"},
}

type server struct {
	client *resty.Client
	apiKey string
}

func newServer() *server {
	s := &server{apiKey: os.Getenv(apiKeyEnv)}
	if s.apiKey != "" {
		base := os.Getenv(endpointEnv)
		if base == "" {
			base = defaultBaseURL
		}
		s.client = resty.New().
			SetBaseURL(base).
			SetAuthToken(s.apiKey).
			SetHeader("Content-Type", "application/json")
	}
	return s
}

func (s *server) GetMetadata(_ context.Context, _ *assistrpc.Empty) (*assistrpc.Metadata, error) {
	return &assistrpc.Metadata{Name: "assistant", Version: "1.0.0"}, nil
}

func (s *server) ClassifyIcon(ctx context.Context, in *assistrpc.ClassifyIconRequest) (*assistrpc.ClassifyIconResponse, error) {
	if s.client != nil {
		if icon, err := s.remoteClassify(ctx, in.TopicName); err == nil {
			return &assistrpc.ClassifyIconResponse{Icon: icon}, nil
		}
		// Remote failure falls through to the heuristics.
	}
	return &assistrpc.ClassifyIconResponse{Icon: classifyOffline(in.TopicName)}, nil
}

func (s *server) CoachReply(ctx context.Context, in *assistrpc.CoachReplyRequest) (*assistrpc.CoachReplyResponse, error) {
	if s.client == nil {
		return &assistrpc.CoachReplyResponse{Text: coachOffline(in.Message)}, nil
	}
	text, err := s.remoteCoach(ctx, in)
	if err != nil {
		return nil, err
	}
	return &assistrpc.CoachReplyResponse{Text: text}, nil
}

type classifyAPIRequest struct {
	TopicName string `json:"topic_name"`
}

type classifyAPIResponse struct {
	Icon string `json:"icon"`
}

func (s *server) remoteClassify(ctx context.Context, topicName string) (string, error) {
	var out classifyAPIResponse
	response, err := s.client.R().
		SetContext(ctx).
		SetBody(classifyAPIRequest{TopicName: topicName}).
		SetResult(&out).
		Post("/v1/classify-icon")
	if err != nil {
		return "", err
	}
	if response.IsError() {
		return "", fmt.Errorf("classify endpoint returned %s", response.Status())
	}
	return out.Icon, nil
}

type coachAPIRequest struct {
	History       []assistrpc.ChatTurn `json:"history"`
	Message       string               `json:"message"`
	ContextPrompt string               `json:"context_prompt"`
}

type coachAPIResponse struct {
	Text string `json:"text"`
}

func (s *server) remoteCoach(ctx context.Context, in *assistrpc.CoachReplyRequest) (string, error) {
	var out coachAPIResponse
	response, err := s.client.R().
		SetContext(ctx).
		SetBody(coachAPIRequest{History: in.History, Message: in.Message, ContextPrompt: in.ContextPrompt}).
		SetResult(&out).
		Post("/v1/coach")
	if err != nil {
		return "", err
	}
	if response.IsError() {
		return "", fmt.Errorf("coach endpoint returned %s", response.Status())
	}
	return out.Text, nil
}

func classifyOffline(topicName string) string {
	name := strings.ToLower(topicName)
	for _, rule := range iconRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.icon
			}
		}
	}
	return "zap"
}

func coachOffline(message string) string {
	message = strings.ToLower(message)
	switch {
	case strings.Contains(message, "streak"):
		return "Streaks are built one honest day at a time. Show up today and the number takes care of itself."
	case strings.Contains(message, "tired"), strings.Contains(message, "break"):
		return "Rest is part of the plan. Take five, then give me one more focused block."
	default:
		return "Pick one topic, start the timer, and make the next 25 minutes count."
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: assistrpc.HandshakeConfig,
		Plugins:         assistrpc.PluginMap(newServer()),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
