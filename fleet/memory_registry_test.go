package fleet

import "testing"

func TestInMemoryRegisterDiscoverDeregister(t *testing.T) {
	reg := NewInMemoryRegistry()

	if err := reg.Register("survival", ServerInfo{Addr: "127.0.0.1:25565", Weight: 10}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("survival", ServerInfo{Addr: "127.0.0.1:25566", Weight: 5}); err != nil {
		t.Fatal(err)
	}

	servers, err := reg.Discover("survival")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 2 {
		t.Fatalf("expect 2 servers, got %d", len(servers))
	}

	if err := reg.Deregister("survival", "127.0.0.1:25565"); err != nil {
		t.Fatal(err)
	}
	servers, err = reg.Discover("survival")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 1 || servers[0].Addr != "127.0.0.1:25566" {
		t.Fatalf("expect only 127.0.0.1:25566 to remain, got %+v", servers)
	}
}

func TestInMemoryRegisterReplacesExisting(t *testing.T) {
	reg := NewInMemoryRegistry()
	reg.Register("survival", ServerInfo{Addr: "a", LatencyMS: 10})
	reg.Register("survival", ServerInfo{Addr: "a", LatencyMS: 20})

	servers, _ := reg.Discover("survival")
	if len(servers) != 1 {
		t.Fatalf("expect one entry after re-registering same addr, got %d", len(servers))
	}
	if servers[0].LatencyMS != 20 {
		t.Fatalf("expect latest registration to win, got %+v", servers[0])
	}
}

func TestInMemoryDiscoverUnknownFleet(t *testing.T) {
	reg := NewInMemoryRegistry()
	servers, err := reg.Discover("nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 0 {
		t.Fatalf("expect empty list, got %+v", servers)
	}
}
