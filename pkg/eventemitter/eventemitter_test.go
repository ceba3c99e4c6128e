package eventemitter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"termlaunch.dev/launcher/pkg/eventemitter"
)

func TestEmitWithoutSubscribers(t *testing.T) {
	emitter := eventemitter.EventEmitter[string]{}
	assert.NotPanics(t, func() { emitter.Emit("nobody listens") })
}

func TestEmitOrder(t *testing.T) {
	emitter := eventemitter.EventEmitter[int]{}
	var received []string
	emitter.Subscribe(func(message int) { received = append(received, "first") })
	emitter.Subscribe(func(message int) { received = append(received, "second") })

	emitter.Emit(1)
	emitter.Emit(2)
	assert.Equal(t, []string{"first", "second", "first", "second"}, received)
}

func TestSubscribeNil(t *testing.T) {
	emitter := eventemitter.EventEmitter[bool]{}
	assert.Panics(t, func() { emitter.Subscribe(nil) })
}

func TestConcurrentEmit(t *testing.T) {
	emitter := eventemitter.EventEmitter[int]{}
	mutex := sync.Mutex{}
	total := 0
	emitter.Subscribe(func(message int) {
		mutex.Lock()
		total += message
		mutex.Unlock()
	})

	waitGroup := sync.WaitGroup{}
	for index := 1; index <= 10; index++ {
		waitGroup.Add(1)
		go func(value int) {
			defer waitGroup.Done()
			emitter.Emit(value)
		}(index)
	}
	waitGroup.Wait()
	assert.Equal(t, 55, total)
}
