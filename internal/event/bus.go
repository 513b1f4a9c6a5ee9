package event

import "sync"

// 購読チャネルのバッファ。詰まった購読者へは配送を諦める（配信はベストエフォート）。
const subscriberBuffer = 16

// Bus はプロセス内のpub/subハブ。
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe は購読チャネルと解除関数を返す。
// 解除関数は複数回呼んでも安全。
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish は全購読者へ配る。ブロックはしない。
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// 受け取りが追いつかない購読者はスキップ
		}
	}
}
