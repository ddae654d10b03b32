package snap_position

import (
	"context"

	snapPosition "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/snap_position"
)

type SnapPositionUseCase interface {
	Execute(ctx context.Context, req *snapPosition.Request) (*snapPosition.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
