package fleet

import (
	"net"
	"testing"
)

func TestConnPoolGetPutReuse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				buf := make([]byte, 1)
				for {
					if _, err := c.Read(buf); err != nil {
						return
					}
				}
			}(c)
		}
	}()

	pool := NewConnPool(ln.Addr().String(), 2, func() (net.Conn, error) {
		return net.Dial("tcp", ln.Addr().String())
	})
	defer pool.Close()

	c1, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(c1)

	c2, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	if c2 != c1 {
		t.Fatal("expect Get to reuse the connection returned by Put")
	}
	pool.Put(c2)
}

func TestConnPoolUnusableFreesSlot(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			_ = c
		}
	}()

	pool := NewConnPool(ln.Addr().String(), 1, func() (net.Conn, error) {
		return net.Dial("tcp", ln.Addr().String())
	})
	defer pool.Close()

	c1, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	c1.MarkUnusable()
	pool.Put(c1)

	c2, err := pool.Get()
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(c2)
}
