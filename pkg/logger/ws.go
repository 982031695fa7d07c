package logger

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSyncer is a log file sink that can be reopened on SIGHUP.
type FileSyncer interface {
	Write(p []byte) (n int, err error)
	Sync() error
	Reload() error
	Close() error
}

// NewFileSyncer rotates by size when rotate is set. Otherwise the file is left
// to an external rotator and reopened on Reload.
func NewFileSyncer(file string, rotate bool, maxSizeMB, maxBackups int) (FileSyncer, error) {
	if rotate {
		return NewRotatingWriteSyncer(file, maxSizeMB, maxBackups)
	}
	return NewReopenableWriteSyncer(file)
}

type ReopenableWriteSyncer struct {
	file string
	cur  atomic.Value
}

func NewReopenableWriteSyncer(file string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		file: file,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) getFile() *os.File {
	return ws.cur.Load().(*os.File)
}

func (ws *ReopenableWriteSyncer) Reload() error {
	if dir := filepath.Dir(ws.file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(ws.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	old := ws.cur.Swap(file)
	if old != nil {
		return old.(*os.File).Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.getFile().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.getFile().Close()
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.getFile().Write(p)
}

// RotatingWriteSyncer hands size based rotation to lumberjack.
type RotatingWriteSyncer struct {
	l *lumberjack.Logger
}

func NewRotatingWriteSyncer(file string, maxSizeMB, maxBackups int) (*RotatingWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}
	return &RotatingWriteSyncer{
		l: &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			Compress:   true,
		},
	}, nil
}

func (ws *RotatingWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.l.Write(p)
}

func (ws *RotatingWriteSyncer) Sync() error {
	return nil
}

// Reload forces a rotation.
func (ws *RotatingWriteSyncer) Reload() error {
	return ws.l.Rotate()
}

func (ws *RotatingWriteSyncer) Close() error {
	return ws.l.Close()
}
