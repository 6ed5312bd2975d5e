package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
)

// BedrockClient implements Embedder and Generator on top of AWS Bedrock
// (Titan model family).
type BedrockClient struct {
	runtime          *bedrockruntime.BedrockRuntime
	embeddingModelID string
	textModelID      string
}

type Config struct {
	Region           string
	AccessKey        string
	SecretKey        string
	EmbeddingModelID string
	TextModelID      string
}

func NewBedrockClient(cfg Config) (*BedrockClient, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("region is required for Bedrock")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &BedrockClient{
		runtime:          bedrockruntime.New(sess),
		embeddingModelID: cfg.EmbeddingModelID,
		textModelID:      cfg.TextModelID,
	}, nil
}

type titanEmbedRequest struct {
	InputText string `json:"inputText"`
}

type titanEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

type titanTextRequest struct {
	InputText            string           `json:"inputText"`
	TextGenerationConfig GenerationConfig `json:"textGenerationConfig"`
}

type titanTextResponse struct {
	Results []struct {
		OutputText string `json:"outputText"`
	} `json:"results"`
}

func (c *BedrockClient) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(titanEmbedRequest{InputText: text})
	if err != nil {
		return nil, err
	}

	out, err := c.runtime.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.embeddingModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("titan embedding call failed: %w", err)
	}

	var resp titanEmbedResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode titan embedding response: %w", err)
	}
	return resp.Embedding, nil
}

func (c *BedrockClient) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	body, err := json.Marshal(titanTextRequest{
		InputText:            prompt,
		TextGenerationConfig: cfg,
	})
	if err != nil {
		return "", err
	}

	out, err := c.runtime.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.textModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("titan text call failed: %w", err)
	}

	var resp titanTextResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode titan text response: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("titan text model returned no results")
	}
	return resp.Results[0].OutputText, nil
}
