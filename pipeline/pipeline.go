package pipeline

import (
	"context"
)

const streamBufferSize = 8

// Seq emits 0..n-1 and stops early once ctx is done.
func Seq(ctx context.Context, n uint) <-chan uint {
	outputStream := make(chan uint, streamBufferSize)
	go func() {
		defer close(outputStream)
		for i := uint(0); i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case outputStream <- i:
			}
		}
	}()

	return outputStream
}

func Map[T, U any](ctx context.Context, inputStream <-chan T, f func(T) U) <-chan U {
	outputStream := make(chan U, streamBufferSize)
	go func() {
		defer close(outputStream)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outputStream <- f(item):
				}
			}
		}
	}()

	return outputStream
}

func ToSlice[T any](inputStream <-chan T) []T {
	output := make([]T, 0)
	for item := range inputStream {
		output = append(output, item)
	}

	return output
}
