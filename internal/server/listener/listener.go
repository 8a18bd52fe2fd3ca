package listener

import (
	"net"
	"time"
)

type Listener struct {
	*net.TCPListener
}

func NewListener(addr string) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Listener{ln.(*net.TCPListener)}, nil
}

//Accept accept with keep-alive enabled, watch clients hold connections open
func (l *Listener) Accept() (net.Conn, error) {
	conn, err := l.TCPListener.Accept()
	if err != nil {
		return nil, err
	}
	tcpConn := conn.(*net.TCPConn)
	if err := tcpConn.SetKeepAlive(true); err != nil {
		return nil, err
	}
	if err := tcpConn.SetKeepAlivePeriod(time.Second * 60); err != nil {
		return nil, err
	}
	return tcpConn, nil
}
