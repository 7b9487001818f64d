package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fair - доказуемо честный источник: поток байт HMAC-SHA256(serverSeed, "clientSeed:nonce:round").
// Каждое число собирается из 4 байт
type Fair struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buf        [32]byte
}

func NewFair(serverSeed, clientSeed string, nonce uint64) *Fair {
	f := &Fair{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}
	f.fill()
	return f
}

func (f *Fair) Float64() float64 {
	var result float64
	divider := 1.0
	for i := 0; i < 4; i++ {
		divider *= 256
		result += float64(f.next()) / divider
	}
	return result
}

func (f *Fair) next() byte {
	if f.pos >= len(f.buf) {
		f.round++
		f.pos = 0
		f.fill()
	}
	b := f.buf[f.pos]
	f.pos++
	return b
}

func (f *Fair) fill() {
	h := hmac.New(sha256.New, []byte(f.serverSeed))
	h.Write([]byte(fmt.Sprintf("%s:%d:%d", f.clientSeed, f.nonce, f.round)))
	copy(f.buf[:], h.Sum(nil))
}

// HashServerSeed - sha256 сида в hex, его можно показывать игроку заранее
func HashServerSeed(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}

// FairFactory строит Fair на каждый раунд: clientSeed = "username:game", nonce = номер раунда
type FairFactory struct {
	serverSeed string
}

func NewFairFactory(serverSeed string) *FairFactory {
	return &FairFactory{serverSeed: serverSeed}
}

func (f *FairFactory) SourceFor(username, game string, nonce int64) Source {
	return NewFair(f.serverSeed, username+":"+game, uint64(nonce))
}
