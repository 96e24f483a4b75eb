package exercise

import (
	"github.com/strongfit/studio/internal/exercise/service"
	"go.uber.org/fx"
)

var Module = fx.Module("exercise.service",
	fx.Provide(service.NewService),
)
