package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// FunctionInvoker fires other Lambda functions asynchronously, used by the
// content generator to kick off feed and sitemap regeneration after a post
// lands.
type FunctionInvoker struct {
	client *awslambda.Client
}

// NewFunctionInvoker creates a FunctionInvoker using the default AWS
// configuration.
func NewFunctionInvoker(ctx context.Context) (*FunctionInvoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &FunctionInvoker{client: awslambda.NewFromConfig(cfg)}, nil
}

// InvokeAsync fires functionName with the JSON-encoded payload and returns
// without waiting for the invocation to complete.
func (f *FunctionInvoker) InvokeAsync(ctx context.Context, functionName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", functionName, err)
	}

	_, err = f.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: lambdatypes.InvocationTypeEvent,
		Payload:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	log.Printf("Invoked %s asynchronously", functionName)
	return nil
}
