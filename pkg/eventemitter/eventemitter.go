// Package eventemitter dispatches typed events to subscribed callbacks.
package eventemitter

import "sync"

// EventEmitter delivers every emitted message to its subscribers, in
// subscription order, on the emitting goroutine.
type EventEmitter[T any] struct {
	mutex       sync.RWMutex
	subscribers []func(T)
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.RLock()
	subscribers := eventEmitter.subscribers
	eventEmitter.mutex.RUnlock()
	for _, subscriber := range subscribers {
		subscriber(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	if callback == nil {
		panic("Callback is nil")
	}
	eventEmitter.mutex.Lock()
	defer eventEmitter.mutex.Unlock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, callback)
}
