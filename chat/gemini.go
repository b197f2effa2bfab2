package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/shadowgov/server/game"
)

const generateTimeout = 10 * time.Second

// Gemini produces short in-character table talk for autonomous players.
// It implements game.ChatGenerator.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Generate(trigger game.ChatTrigger) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt(trigger)))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

func prompt(trigger game.ChatTrigger) string {
	var buf strings.Builder
	buf.WriteString("You are a player in a social deduction game about electing governments and enacting policies.\n")
	buf.WriteString("Reply with a single short table-talk message, one or two sentences, no quotes, no narration.\n")
	buf.WriteString("Never reveal your secret role. Stay in character.\n\n")
	fmt.Fprintf(&buf, "Current phase: %s\n", trigger.Phase)
	fmt.Fprintf(&buf, "Situation: %s\n", trigger.Context)
	for key, value := range trigger.Data {
		fmt.Fprintf(&buf, "%s: %v\n", key, value)
	}
	return buf.String()
}
