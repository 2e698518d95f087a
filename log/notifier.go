package log

import "go.uber.org/zap"

// LogNotifier writes notifications to the log. It is used when no chat
// notifications are configured.
type LogNotifier struct {
	log *zap.SugaredLogger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{
		log: S().Named("notifier"),
	}
}

func (n *LogNotifier) Info(msg string) {
	n.log.Infow("notification", "message", msg)
}

func (n *LogNotifier) Error(err error) {
	n.log.Errorw("notification", "err", err)
}
