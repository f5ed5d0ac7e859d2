package xoodyak

import (
	"bytes"
	"testing"
)

func TestHashAbsorbChunkingInvariance(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	whole := NewHash()
	whole.Absorb(msg)
	wholeOut := whole.Squeeze(32)

	chunked := NewHash()
	for i := range msg {
		chunked.Absorb(msg[i : i+1])
	}
	chunkedOut := chunked.Squeeze(32)

	if !bytes.Equal(wholeOut, chunkedOut) {
		t.Errorf("byte-at-a-time absorb diverged: %x != %x", chunkedOut, wholeOut)
	}
}

func TestKeyedEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("a secret key")
	plaintext := []byte("attack at dawn")

	enc := NewKeyedWithKey(key)
	ciphertext := append([]byte(nil), plaintext...)
	enc.Encrypt(ciphertext)
	tag := enc.Squeeze(16)

	dec := NewKeyedWithKey(key)
	recovered := append([]byte(nil), ciphertext...)
	dec.Decrypt(recovered)
	gotTag := dec.Squeeze(16)

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("decrypted = %q, want %q", recovered, plaintext)
	}
	if !bytes.Equal(gotTag, tag) {
		t.Errorf("decrypt-side tag = %x, want %x", gotTag, tag)
	}
}

func TestKeyedWithDifferentIDsDiverge(t *testing.T) {
	key := []byte("a secret key")

	a := NewKeyedWithKeyID(key, []byte("session-a")).Squeeze(16)
	b := NewKeyedWithKeyID(key, []byte("session-b")).Squeeze(16)

	if bytes.Equal(a, b) {
		t.Error("different ids produced identical squeeze output")
	}
}

func TestSqueezeKeyDiffersFromSqueeze(t *testing.T) {
	k := NewKeyedWithKey([]byte("a secret key"))
	out := k.Squeeze(16)

	k2 := NewKeyedWithKey([]byte("a secret key"))
	keyOut := k2.SqueezeKey(16)

	if bytes.Equal(out, keyOut) {
		t.Error("Squeeze and SqueezeKey produced identical output from the same state")
	}
}
