package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

const summarizePrompt = `You are an assistant that summarizes YouTube videos. You will be given a video reference (a URL, possibly with its title and description) and a target language. Summarize the main points of the video in a few short paragraphs, written entirely in the target language. Do not add introductory phrases like "This video is about" or "Summary of". If you cannot determine the content from what is given, say so briefly in the target language instead of inventing details.`

// OpenAIService implements ai.SummarizerService using the chat completion API
type OpenAIService struct {
	client *goopenai.Client
	model  string
}

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		client: goopenai.NewClient(apiKey),
		model:  goopenai.GPT4o,
	}
}

func (o *OpenAIService) SummarizeVideo(ctx context.Context, videoText, language string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		goopenai.ChatCompletionRequest{
			Model: o.model,
			Messages: []goopenai.ChatCompletionMessage{
				{
					Role:    goopenai.ChatMessageRoleSystem,
					Content: summarizePrompt,
				},
				{
					Role:    goopenai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Target language: %s\n\n%s", language, videoText),
				},
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to fetch summary: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no summary returned")
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}
