package dynamodb

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerConfig holds configuration for the store circuit breaker
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns a default configuration for the store circuit breaker
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "dynamodb",
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      10,
	}
}

// BreakerClient fails fast with gobreaker.ErrOpenState while a table keeps failing.
// Each table gets its own breaker, named "<cfg.Name>:<table>".
type BreakerClient struct {
	next     DynamoDBAPI
	cfg      BreakerConfig
	logger   *zap.Logger
	onChange func(name, to string)

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

var _ DynamoDBAPI = (*BreakerClient)(nil)

// NewBreakerClient wraps next. onChange may be nil.
func NewBreakerClient(next DynamoDBAPI, cfg BreakerConfig, logger *zap.Logger, onChange func(name, to string)) *BreakerClient {
	return &BreakerClient{
		next:     next,
		cfg:      cfg,
		logger:   logger,
		onChange: onChange,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (b *BreakerClient) breaker(table string) *gobreaker.CircuitBreaker {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[table]; ok {
		return cb
	}
	cfg := b.cfg
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name + ":" + table,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			b.logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if b.onChange != nil {
				b.onChange(name, to.String())
			}
		},
		IsSuccessful: isHealthyOutcome,
	})
	b.breakers[table] = cb
	return cb
}

// State reports the breaker state of one table.
func (b *BreakerClient) State(table string) string {
	return b.breaker(table).State().String()
}

// isHealthyOutcome counts only store-side failures. Condition failures, missing
// tables, rejected requests and cancellations leave the breaker alone.
func isHealthyOutcome(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "ConditionalCheckFailedException", "ResourceNotFoundException", "ValidationException":
		return true
	}
	return false
}

func execute[O any](b *BreakerClient, table *string, fn func() (*O, error)) (*O, error) {
	out, err := b.breaker(aws.ToString(table)).Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	res, _ := out.(*O)
	return res, nil
}

func (b *BreakerClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.GetItemOutput, error) { return b.next.GetItem(ctx, params, optFns...) })
}

func (b *BreakerClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.PutItemOutput, error) { return b.next.PutItem(ctx, params, optFns...) })
}

func (b *BreakerClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.UpdateItemOutput, error) { return b.next.UpdateItem(ctx, params, optFns...) })
}

func (b *BreakerClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.DeleteItemOutput, error) { return b.next.DeleteItem(ctx, params, optFns...) })
}

func (b *BreakerClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.ScanOutput, error) { return b.next.Scan(ctx, params, optFns...) })
}

func (b *BreakerClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.QueryOutput, error) { return b.next.Query(ctx, params, optFns...) })
}

func (b *BreakerClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return execute(b, params.TableName, func() (*dynamodb.DescribeTableOutput, error) { return b.next.DescribeTable(ctx, params, optFns...) })
}
