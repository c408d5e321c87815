package probes

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func init() {
	Register(&postgresProbe{})
	Register(&redisProbe{})
	Register(&mongoProbe{})
}

// postgresProbe connects to a PostgreSQL server and measures the latency of
// one probe query.
type postgresProbe struct{}

func (p *postgresProbe) Name() string { return "other.sql.postgres" }

func (p *postgresProbe) Run(ctx context.Context, params map[string]any) Result {
	dsn, ok := params["dsn"].(string)
	if !ok || dsn == "" {
		return ErrorResult("missing 'dsn' parameter")
	}
	query := "SELECT 1"
	if q, ok := params["query"].(string); ok && q != "" {
		query = q
	}

	start := time.Now()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "connect failed"}}
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "query failed"}}
	}
	rowCount := 0
	for rows.Next() {
		rowCount++
	}
	rows.Close()
	if rows.Err() != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "query failed"}}
	}
	return Result{Status: StatusSuccess, Data: map[string]any{
		"latency_ms": time.Since(start).Seconds() * 1000,
		"rows":       rowCount,
	}}
}

// redisProbe checks a Redis server with PING and a SET/GET round trip.
type redisProbe struct{}

func (p *redisProbe) Name() string { return "other.nosql.redis" }

func (p *redisProbe) Run(ctx context.Context, params map[string]any) Result {
	addr, ok := params["addr"].(string)
	if !ok || addr == "" {
		return ErrorResult("missing 'addr' parameter")
	}
	opts := &redis.Options{Addr: addr}
	if password, ok := params["password"].(string); ok {
		opts.Password = password
	}
	client := redis.NewClient(opts)
	defer client.Close()

	start := time.Now()
	if err := client.Ping(ctx).Err(); err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "ping failed"}}
	}
	key := "symon:probe"
	if err := client.Set(ctx, key, "1", time.Minute).Err(); err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "set failed"}}
	}
	if err := client.Get(ctx, key).Err(); err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "get failed"}}
	}
	return Result{Status: StatusSuccess, Data: map[string]any{
		"latency_ms": time.Since(start).Seconds() * 1000,
	}}
}

// mongoProbe connects to a MongoDB server and measures ping latency.
type mongoProbe struct{}

func (p *mongoProbe) Name() string { return "other.nosql.mongo" }

func (p *mongoProbe) Run(ctx context.Context, params map[string]any) Result {
	uri, ok := params["uri"].(string)
	if !ok || uri == "" {
		return ErrorResult("missing 'uri' parameter")
	}

	start := time.Now()
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "connect failed"}}
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, nil); err != nil {
		return Result{Status: StatusError, Data: map[string]any{"description": "ping failed"}}
	}
	return Result{Status: StatusSuccess, Data: map[string]any{
		"latency_ms": time.Since(start).Seconds() * 1000,
	}}
}
