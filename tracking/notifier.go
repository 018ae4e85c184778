package tracking

import "go.uber.org/zap"

// Notifier acknowledges completed (or failed) operations to the user.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// LogNotifier writes notifications as structured log lines.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(zap.Bool("notification", true))}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info(msg, zap.String("kind", "success"))
}

func (n *LogNotifier) Warning(msg string) {
	n.logger.Warn(msg, zap.String("kind", "warning"))
}

func (n *LogNotifier) Error(msg string) {
	n.logger.Error(msg, zap.String("kind", "error"))
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Warning(string) {}
func (NopNotifier) Error(string)   {}
