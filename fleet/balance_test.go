package fleet

import (
	"fmt"
	"testing"
)

var testServers = []ServerInfo{
	{Addr: ":25561", Weight: 10, Version: "1.20.4"},
	{Addr: ":25562", Weight: 5, Version: "1.20.4"},
	{Addr: ":25563", Weight: 10, Version: "1.20.4"},
}

func TestRoundRobin(t *testing.T) {
	b := &RoundRobinBalancer{}

	results := make([]string, 3)
	for i := 0; i < 3; i++ {
		s, err := b.Pick(testServers)
		if err != nil {
			t.Fatal(err)
		}
		results[i] = s.Addr
	}

	s, _ := b.Pick(testServers)
	if s.Addr != results[0] {
		t.Fatalf("expect wrap around to %s, got %s", results[0], s.Addr)
	}
}

func TestRoundRobinEmpty(t *testing.T) {
	b := &RoundRobinBalancer{}
	if _, err := b.Pick(nil); err == nil {
		t.Fatal("expect error for empty server list")
	}
}

func TestWeightedRandom(t *testing.T) {
	b := &WeightedRandomBalancer{}

	counts := map[string]int{}
	n := 10000
	for i := 0; i < n; i++ {
		s, err := b.Pick(testServers)
		if err != nil {
			t.Fatal(err)
		}
		counts[s.Addr]++
	}

	ratio := float64(counts[":25561"]) / float64(counts[":25562"])
	if ratio < 1.5 || ratio > 2.5 {
		t.Fatalf("weight ratio :25561/:25562 = %.2f, expect ~2.0", ratio)
	}
}

func TestWeightedRandomUnweightedDefaultsToOne(t *testing.T) {
	b := &WeightedRandomBalancer{}
	servers := []ServerInfo{{Addr: ":1"}, {Addr: ":2"}}
	s, err := b.Pick(servers)
	if err != nil {
		t.Fatal(err)
	}
	if s.Addr != ":1" && s.Addr != ":2" {
		t.Fatalf("unexpected pick %s", s.Addr)
	}
}

func TestConsistentHash(t *testing.T) {
	b := NewConsistentHashBalancer()
	for i := range testServers {
		b.Add(&testServers[i])
	}

	s1, _ := b.Pick("player-123")
	s2, _ := b.Pick("player-123")
	if s1.Addr != s2.Addr {
		t.Fatalf("same key mapped to different servers: %s vs %s", s1.Addr, s2.Addr)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, _ := b.Pick(fmt.Sprintf("key-%d", i))
		seen[s.Addr] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expect at least 2 different servers, got %d", len(seen))
	}
}

func TestConsistentHashEmptyRing(t *testing.T) {
	b := NewConsistentHashBalancer()
	if _, err := b.Pick("anything"); err == nil {
		t.Fatal("expect error for empty ring")
	}
}
