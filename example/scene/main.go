package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/feather2d"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "example/scene/config.yaml", "collision pipeline config")
	scenePath := flag.String("scene", "example/scene/scene.yaml", "bodies to test")
	flag.Parse()

	if err := run(*configPath, *scenePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, scenePath string) error {
	config, err := feather2d.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := feather2d.NewLogger(config.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	scene, err := feather2d.LoadScene(scenePath)
	if err != nil {
		return err
	}

	detector, err := feather2d.NewDetector(config, logger)
	if err != nil {
		return err
	}

	constraints, err := detector.NarrowPhase(context.Background(), scene.Pairs())
	if err != nil {
		return err
	}

	for _, c := range constraints {
		fields := []zap.Field{
			zap.String("body_a", scene.Name(c.BodyA)),
			zap.String("body_b", scene.Name(c.BodyB)),
			zap.Float64s("normal", c.Normal[:]),
			zap.Float64("depth", c.Depth),
		}
		for i, contact := range c.Contacts {
			fields = append(fields, zap.Float64s(fmt.Sprintf("contact_%d", i), contact[:]))
		}
		logger.Info("collision", fields...)
	}

	feather2d.Solve(constraints)

	for i, body := range scene.Bodies {
		position := body.Position()
		logger.Info("resolved",
			zap.String("body", scene.Names[i]),
			zap.Stringer("type", body.BodyType),
			zap.Float64s("position", position[:]),
			zap.Float64s("velocity", body.Velocity[:]),
			zap.Float64("angular_velocity", body.AngularVelocity),
		)
	}

	return nil
}
