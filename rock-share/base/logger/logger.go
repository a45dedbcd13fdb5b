package logger

import (
	"time"

	"go.uber.org/zap"
)

// InitLogger 初始化全局日志。level暂时只区分debug和非debug
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, dsn string) {
	initZap(projectName, logPath, maxAge, rotationTime, rotationSize, dsn)
	if level == "debug" {
		zap.S().Debugf("logger init, level=%s, path=%s", level, logPath)
	}
}

func Debugf(format string, args ...interface{}) {
	zap.S().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	zap.S().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	zap.S().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	zap.S().Errorf(format, args...)
}

// Error 带格式化的错误日志,历史调用习惯保留
func Error(format string, args ...interface{}) {
	zap.S().Errorf(format, args...)
}

func Sync() {
	_ = zap.L().Sync()
}
