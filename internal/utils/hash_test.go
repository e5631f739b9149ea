package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHash_MatchesDirectHMAC(t *testing.T) {
	InitHasherPool("pool-key")

	data := []byte("session cookie value")

	want := hmac.New(sha256.New, []byte("pool-key"))
	want.Write(data)

	if got := Hash(data); !bytes.Equal(got, want.Sum(nil)) {
		t.Fatalf("pooled digest differs from direct HMAC")
	}
}

func TestHash_DeterministicAcrossCalls(t *testing.T) {
	InitHasherPool("pool-key")

	data := []byte("repeatable input")
	first := Hash(data)

	// Exercise pool reuse; every call must produce the same digest.
	for i := 0; i < 100; i++ {
		if !bytes.Equal(Hash(data), first) {
			t.Fatalf("digest changed on call %d", i)
		}
	}
}

func TestHash_ConcurrentUse(t *testing.T) {
	InitHasherPool("pool-key")

	data := []byte("concurrent input")
	want := Hash(data)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if !bytes.Equal(Hash(data), want) {
					t.Error("digest mismatch under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHashString_KeyedAndHexEncoded(t *testing.T) {
	sig := HashString("payload", "secret")

	if _, err := hex.DecodeString(sig); err != nil {
		t.Fatalf("signature is not valid hex: %v", err)
	}
	if sig != HashString("payload", "secret") {
		t.Fatal("expected deterministic signature")
	}
	if sig == HashString("payload", "other-secret") {
		t.Fatal("expected different signature for different key")
	}
	if sig == HashString("other payload", "secret") {
		t.Fatal("expected different signature for different payload")
	}
}
