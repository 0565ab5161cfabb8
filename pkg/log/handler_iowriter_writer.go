package log

import (
	"io"
	"os"

	"github.com/saranonuan/winston-log2gelf/pkg/cfg"
)

type IoWriterWriterFactory func(config cfg.Config, configKey string) (io.Writer, error)

var ioWriterFactories = map[string]IoWriterWriterFactory{
	"stdout": ioWriterStdOutFactory,
	"stderr": ioWriterStdErrFactory,
}

func AddHandlerIoWriterFactory(typ string, factory IoWriterWriterFactory) {
	ioWriterFactories[typ] = factory
}

func ioWriterStdOutFactory(_ cfg.Config, _ string) (io.Writer, error) {
	return os.Stdout, nil
}

func ioWriterStdErrFactory(_ cfg.Config, _ string) (io.Writer, error) {
	return os.Stderr, nil
}
