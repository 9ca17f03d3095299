package genericconf

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalFileLogger = fileLogger{}

// fileLogger tees log output into a rotating file. At most BufSize writes may
// be in flight at once; writes beyond that bound are dropped rather than
// queued without limit, so a stalled disk cannot wedge the process.
type fileLogger struct {
	// writerMutex serializes writes to the rotating file
	writerMutex sync.Mutex
	writer      *lumberjack.Logger

	slots chan struct{}
}

func (l *fileLogger) Write(p []byte) (n int, err error) {
	select {
	case l.slots <- struct{}{}:
		l.writerMutex.Lock()
		_, _ = l.writer.Write(p)
		l.writerMutex.Unlock()
		<-l.slots
	default:
	}
	return len(p), nil
}

// newFileWriter is not threadsafe
func (l *fileLogger) newFileWriter(config *FileLoggingConfig, filename string) io.Writer {
	l.close()
	l.writer = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
	l.slots = make(chan struct{}, config.BufSize)
	return l
}

// close is not threadsafe
func (l *fileLogger) close() error {
	if l.writer != nil {
		if err := l.writer.Close(); err != nil {
			return err
		}
		l.writer = nil
	}
	return nil
}

// InitLog is not threadsafe
func InitLog(logType string, logLevel string, fileLoggingConfig *FileLoggingConfig, pathResolver func(string) string) error {
	// always close previous instance of file logger
	if err := globalFileLogger.close(); err != nil {
		return fmt.Errorf("failed to close file writer: %w", err)
	}
	output := io.Writer(os.Stderr)
	if fileLoggingConfig.Enable {
		output = io.MultiWriter(
			os.Stderr,
			globalFileLogger.newFileWriter(fileLoggingConfig, pathResolver(fileLoggingConfig.File)),
		)
	}
	handler, err := HandlerFromLogType(logType, output)
	if err != nil {
		flag.Usage()
		return fmt.Errorf("error parsing log type when creating handler: %w", err)
	}
	slogLevel, err := ToSlogLevel(logLevel)
	if err != nil {
		flag.Usage()
		return fmt.Errorf("error parsing log level: %w", err)
	}
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(slogLevel)
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
