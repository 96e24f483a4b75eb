package trainingsession

import (
	"github.com/strongfit/studio/internal/trainingsession/service"
	"go.uber.org/fx"
)

var Module = fx.Module("trainingsession.service",
	fx.Provide(service.NewService),
)
