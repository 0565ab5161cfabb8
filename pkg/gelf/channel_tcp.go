package gelf

import (
	"crypto/tls"
	"fmt"
	"net"
	"sync"
)

type tcpChannel struct {
	lck          sync.Mutex
	conn         net.Conn
	errorHandler ErrorHandler
}

// tcpChannelFactory serves both the tcp and the tls protocol. The dial runs
// asynchronously so construction never blocks on the network; a failed dial is
// reported to the error handler and the channel stays alive without a
// connection.
func tcpChannelFactory(settings *Settings, errorHandler ErrorHandler) (Channel, error) {
	channel := &tcpChannel{
		errorHandler: errorHandler,
	}

	go channel.dial(settings)

	return channel, nil
}

func (c *tcpChannel) dial(settings *Settings) {
	var err error
	var conn net.Conn
	address := fmt.Sprintf("%s:%d", settings.Host, settings.Port)

	if settings.Protocol == ProtocolTls {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: !settings.VerifyCertificates,
			MinVersion:         tls.VersionTLS12,
		}

		conn, err = tls.Dial("tcp", address, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", address)
	}

	if err != nil {
		c.errorHandler(fmt.Errorf("can not connect to %s: %w", address, err))

		return
	}

	c.lck.Lock()
	defer c.lck.Unlock()

	c.conn = conn
}

// Send writes the message followed by the single NUL byte the collector
// splits the stream on. Messages arriving before the dial completed or after
// it failed are dropped and reported, there is no queue in front of the
// connection.
func (c *tcpChannel) Send(body []byte) {
	c.lck.Lock()
	defer c.lck.Unlock()

	if c.conn == nil {
		c.errorHandler(fmt.Errorf("connection to the collector is not established, dropping message"))

		return
	}

	frame := append(body, 0x00)

	if _, err := c.conn.Write(frame); err != nil {
		c.errorHandler(fmt.Errorf("can not write message: %w", err))
	}
}

func (c *tcpChannel) Close() error {
	c.lck.Lock()
	defer c.lck.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil

	if err != nil {
		return fmt.Errorf("can not close connection: %w", err)
	}

	return nil
}
