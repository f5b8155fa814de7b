/*
Copyright 2025 The TeenMind Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level       string
	Filename    string
	SendToFile  bool
	Development bool
	NoCaller    bool
	NoLogLevel  bool
}

var l *zap.SugaredLogger

// Init initializes the global logger. It must be called before any of the
// package-level logging helpers, otherwise a default development logger
// with sane settings is used.
func Init(cfg *Config) {
	l = newLogger(cfg).Sugar()
}

func newLogger(cfg *Config) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.NoLogLevel {
		encCfg.LevelKey = zapcore.OmitKey
	}

	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var sink zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if cfg.SendToFile {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}

	encoder := zapcore.NewConsoleEncoder(encCfg)
	if !cfg.Development {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	opts := []zap.Option{}
	if !cfg.NoCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), opts...)
}

// SugaredLogger returns the global logger.
func SugaredLogger() *zap.SugaredLogger {
	if l == nil {
		Init(&Config{Level: "debug", Development: true, NoCaller: true})
	}

	return l
}

func Debugf(format string, args ...interface{}) {
	SugaredLogger().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	SugaredLogger().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	SugaredLogger().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	SugaredLogger().Errorf(format, args...)
}

func Panicf(format string, args ...interface{}) {
	SugaredLogger().Panicf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	SugaredLogger().Fatalf(format, args...)
}

func Debug(args ...interface{}) {
	SugaredLogger().Debug(args...)
}

func Info(args ...interface{}) {
	SugaredLogger().Info(args...)
}

func Warn(args ...interface{}) {
	SugaredLogger().Warn(args...)
}

func Error(args ...interface{}) {
	SugaredLogger().Error(args...)
}
