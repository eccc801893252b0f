package retsu

import (
	"fmt"
	"testing"
)

var benchSizes = []int{1000, 10000, 100000, 1000000}

func sizeName(size int) string {
	if size == 1000000 {
		return "1M"
	}
	return fmt.Sprintf("%dK", size/1000)
}

func BenchmarkEventBusSubscribe(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				bus := &EventBus{}
				for range size {
					Subscribe(bus, func(e TestEvent) {})
				}
			}
		})
	}
}

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	bus := &EventBus{}
	event := TestEvent{Value: 42}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublishOneHandler(b *testing.B) {
	bus := &EventBus{}
	Subscribe(bus, func(e TestEvent) {})
	event := TestEvent{Value: 42}
	b.ReportAllocs()
	for b.Loop() {
		Publish(bus, event)
	}
}

func BenchmarkEventBusPublishManyHandlers(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			bus := &EventBus{}
			for range size {
				Subscribe(bus, func(e TestEvent) {})
			}
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			for b.Loop() {
				Publish(bus, event)
			}
		})
	}
}
