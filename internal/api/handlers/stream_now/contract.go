package stream_now

import (
	"context"

	trackNow "github.com/m04kA/SMC-CalendarService/internal/usecase/track_now"
)

type TrackNowUseCase interface {
	Execute(ctx context.Context, req *trackNow.Request, emit func(trackNow.Update)) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
