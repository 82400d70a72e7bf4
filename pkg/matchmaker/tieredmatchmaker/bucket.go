// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tieredmatchmaker

import (
	"container/heap"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/matchmaker"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

// NewBucket returns a skill ordered bucket for premium keys and a FIFO bucket otherwise.
func NewBucket(key models.BucketKey) matchmaker.Bucket {
	if key.Premium {
		return &priorityBucket{key: key}
	}
	return &fifoBucket{key: key}
}

// queuedRequest keeps the arrival sequence next to the request so equal skills pop in arrival order.
type queuedRequest struct {
	request models.Request
	seq     uint64
}

// requestHeap is a max-heap on skill level.
type requestHeap []queuedRequest

func (h requestHeap) Len() int { return len(h) }

func (h requestHeap) Less(i, j int) bool {
	if h[i].request.SkillLevel != h[j].request.SkillLevel {
		return h[i].request.SkillLevel > h[j].request.SkillLevel
	}
	return h[i].seq < h[j].seq
}

func (h requestHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *requestHeap) Push(x any) {
	*h = append(*h, x.(queuedRequest))
}

func (h *requestHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedRequest{}
	*h = old[:n-1]
	return item
}

type priorityBucket struct {
	key     models.BucketKey
	items   requestHeap
	nextSeq uint64
}

func (b *priorityBucket) Key() models.BucketKey { return b.key }

func (b *priorityBucket) Push(request models.Request) {
	heap.Push(&b.items, queuedRequest{request: request, seq: b.nextSeq})
	b.nextSeq++
}

func (b *priorityBucket) PopPair() (models.Request, models.Request, bool) {
	if b.items.Len() < 2 {
		return models.Request{}, models.Request{}, false
	}
	first := heap.Pop(&b.items).(queuedRequest)
	second := heap.Pop(&b.items).(queuedRequest)
	return first.request, second.request, true
}

func (b *priorityBucket) Size() int { return b.items.Len() }

func (b *priorityBucket) Drain() []models.Request {
	drained := make([]models.Request, 0, b.items.Len())
	for b.items.Len() > 0 {
		drained = append(drained, heap.Pop(&b.items).(queuedRequest).request)
	}
	return drained
}

// fifoBucket pops from head; the backing slice is compacted once half of it is consumed.
type fifoBucket struct {
	key   models.BucketKey
	items []models.Request
	head  int
}

func (b *fifoBucket) Key() models.BucketKey { return b.key }

func (b *fifoBucket) Push(request models.Request) {
	b.items = append(b.items, request)
}

func (b *fifoBucket) PopPair() (models.Request, models.Request, bool) {
	if b.Size() < 2 {
		return models.Request{}, models.Request{}, false
	}
	first, second := b.items[b.head], b.items[b.head+1]
	b.items[b.head], b.items[b.head+1] = models.Request{}, models.Request{}
	b.head += 2
	b.compact()
	return first, second, true
}

func (b *fifoBucket) Size() int { return len(b.items) - b.head }

func (b *fifoBucket) Drain() []models.Request {
	drained := append([]models.Request(nil), b.items[b.head:]...)
	b.items, b.head = nil, 0
	return drained
}

func (b *fifoBucket) compact() {
	if b.head == len(b.items) {
		b.items, b.head = b.items[:0], 0
		return
	}
	if b.head*2 < len(b.items) {
		return
	}
	n := copy(b.items, b.items[b.head:])
	clear(b.items[n:])
	b.items, b.head = b.items[:n], 0
}
