package mdeck

import (
	"context"
	"time"
)

// defaultPollRate is how many times per second AsyncEventReader retries
// after a report that carried no button/encoder activity.
const defaultPollRate = 20.0

// AsyncEventReader wraps an EventReader with a context.Context-aware
// Read, using the same cancellable-dispatch pattern as AsyncSession.
// Because a report with no state change produces no Events, Read loops
// internally at pollRate until something changes or ctx is cancelled,
// rather than returning an empty slice to the caller.
type AsyncEventReader struct {
	reader   *EventReader
	sem      chan struct{}
	pollRate float64
}

// NewAsyncEventReader wraps reader for context-aware use, retrying at
// defaultPollRate while reports carry no state change.
func NewAsyncEventReader(reader *EventReader) *AsyncEventReader {
	return NewAsyncEventReaderWithPollRate(reader, defaultPollRate)
}

// NewAsyncEventReaderWithPollRate is NewAsyncEventReader with an
// explicit retry rate, in reads per second.
func NewAsyncEventReaderWithPollRate(reader *EventReader, pollRate float64) *AsyncEventReader {
	return &AsyncEventReader{reader: reader, sem: make(chan struct{}, 1), pollRate: pollRate}
}

// Reader returns the synchronous EventReader this wraps.
func (a *AsyncEventReader) Reader() *EventReader { return a.reader }

// Read blocks until the next report producing at least one Event, or
// until ctx is cancelled. Reports that carry no change are retried
// after a pollRate-derived delay instead of being returned as an empty
// slice.
func (a *AsyncEventReader) Read(ctx context.Context, timeout time.Duration) ([]Event, error) {
	for {
		events, err := a.readOnce(ctx, timeout)
		if err != nil {
			return nil, err
		}
		if len(events) > 0 {
			return events, nil
		}

		select {
		case <-time.After(time.Duration(float64(time.Second) / a.pollRate)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (a *AsyncEventReader) readOnce(ctx context.Context, timeout time.Duration) ([]Event, error) {
	select {
	case a.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	result := make(chan struct {
		events []Event
		err    error
	}, 1)
	go func() {
		defer func() { <-a.sem }()
		events, err := a.reader.Read(timeout)
		result <- struct {
			events []Event
			err    error
		}{events, err}
	}()

	select {
	case r := <-result:
		return r.events, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Poll calls Read in a loop, invoking onEvent for each Event produced,
// until ctx is cancelled or onEvent returns an error.
func (a *AsyncEventReader) Poll(ctx context.Context, timeout time.Duration, onEvent func(Event) error) error {
	for {
		events, err := a.Read(ctx, timeout)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := onEvent(ev); err != nil {
				return err
			}
		}
	}
}
