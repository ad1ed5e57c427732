//go:build lambda
// +build lambda

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/config"
	"github.com/rpgo/incometax/internal/logging"
	"github.com/rpgo/incometax/internal/server"
)

// @title           Income Tax API
// @version         1.0
// @description     Slab-based income tax computation for the old and new regimes.

// @host      localhost:8080
// @BasePath  /api/v1

var (
	ginLambda *ginadapter.GinLambda
	logger    *zap.Logger
)

func init() {
	cfg, err := config.LoadAppConfig("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err = logging.New(cfg.Logging, "")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	rules, err := config.NewInputParser().LoadRulesOrDefault(cfg.Rules.File)
	if err != nil {
		logger.Fatal("failed to load tax rules", zap.Error(err))
	}
	engine, err := calculation.NewCalculationEngineWithRules(rules)
	if err != nil {
		logger.Fatal("failed to build engine", zap.Error(err))
	}
	engine.SetLogger(logging.NewZapAdapter(logger))

	ginLambda = ginadapter.New(server.New(engine, logger, cfg.Server).Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
