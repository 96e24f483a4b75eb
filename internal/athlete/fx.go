package athlete

import (
	"github.com/strongfit/studio/internal/athlete/service"
	"go.uber.org/fx"
)

var Module = fx.Module("athlete.service",
	fx.Provide(service.NewService),
)
